// Package store owns all application state in memory. A Store is constructed
// once per process (or per test) and injected into the services; there is no
// package-level state. Every read hands out deep copies, so the canonical
// records can only change through the mutation methods, and every derived
// view (own orders vs. all orders) is computed from the same records.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

// Store is the in-memory system of record.
type Store struct {
	mu sync.RWMutex

	users        map[uuid.UUID]*models.User
	usersByEmail map[string]uuid.UUID
	orders       []*models.Order
	requests     []*models.VerificationRequest
	messages     map[uuid.UUID][]*models.Message
	content      models.SiteContent

	now func() time.Time
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		users:        make(map[uuid.UUID]*models.User),
		usersByEmail: make(map[string]uuid.UUID),
		messages:     make(map[uuid.UUID][]*models.Message),
		content: models.SiteContent{
			HeroDisplayMode: models.HeroModeSlideshow,
		},
		now: time.Now,
	}
}

// SetClock overrides the store's time source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
