package store

import (
	"sort"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

// InsertOrder records a new order and bumps the owner's order counter in the
// same critical section. The first status history entry is written here so
// an order can never exist without one.
func (s *Store) InsertOrder(o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.users[o.UserID]
	if !ok {
		return ErrNotFound
	}

	o.EnsureID()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = s.now()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}
	if len(o.StatusHistory) == 0 {
		o.StatusHistory = []models.StatusEntry{{Status: o.Status, Timestamp: o.CreatedAt}}
	}

	stored := o.Clone()
	s.orders = append(s.orders, &stored)
	owner.TotalOrders++
	return nil
}

// OrderByID fetches an order copy by id.
func (s *Store) OrderByID(id uuid.UUID) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.findOrder(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return o.Clone(), nil
}

// ListOrders returns every order, newest first.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	sortNewestFirst(out)
	return out
}

// ListOrdersByUser returns one user's orders, newest first.
func (s *Store) ListOrdersByUser(userID uuid.UUID) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o.Clone())
		}
	}
	sortNewestFirst(out)
	return out
}

// UpdateOrderStatus applies a status transition under the store lock.
// Repeating the current status refreshes UpdatedAt without growing the
// history; anything else is validated against the transition rules first.
func (s *Store) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus, strict bool) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.findOrder(id)
	if !ok {
		return models.Order{}, ErrNotFound
	}

	if err := models.ValidateTransition(o.Status, status, strict); err != nil {
		return models.Order{}, err
	}

	now := s.now()
	o.UpdatedAt = now
	if o.Status != status {
		o.Status = status
		o.StatusHistory = append(o.StatusHistory, models.StatusEntry{Status: status, Timestamp: now})
	}
	return o.Clone(), nil
}

// CountOrdersByStatus aggregates order counts per status.
func (s *Store) CountOrdersByStatus() map[models.OrderStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.OrderStatus]int)
	for _, o := range s.orders {
		counts[o.Status]++
	}
	return counts
}

func (s *Store) findOrder(id uuid.UUID) (*models.Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
