package store

import (
	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

// AppendMessage adds a message to its order's thread and returns the stored
// record with its final id and timestamp.
func (s *Store) AppendMessage(m *models.Message) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findOrder(m.OrderID); !ok {
		return models.Message{}, ErrNotFound
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = s.now()
	}

	stored := *m
	s.messages[m.OrderID] = append(s.messages[m.OrderID], &stored)
	return stored, nil
}

// MessagesByOrder returns an order's thread in send order. An order with no
// messages yields an empty thread.
func (s *Store) MessagesByOrder(orderID uuid.UUID) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread := s.messages[orderID]
	out := make([]models.Message, 0, len(thread))
	for _, m := range thread {
		out = append(out, *m)
	}
	return out
}
