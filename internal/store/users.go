package store

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// InsertUser registers a new account. The email must be unused.
func (s *Store) InsertUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(u.Email)
	if _, exists := s.usersByEmail[email]; exists {
		return ErrEmailTaken
	}

	u.EnsureID()
	u.Email = email
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	u.UpdatedAt = u.CreatedAt

	stored := *u
	s.users[stored.ID] = &stored
	s.usersByEmail[email] = stored.ID
	return nil
}

// UserByID fetches a user copy by id.
func (s *Store) UserByID(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// UserByEmail fetches a user copy by email.
func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usersByEmail[normalizeEmail(email)]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return *s.users[id], nil
}

// ListUsers returns all accounts ordered by signup time.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Email < out[j].Email
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// FirstUserByRole returns the longest-serving account holding the role.
func (s *Store) FirstUserByRole(role models.Role) (models.User, error) {
	for _, u := range s.ListUsers() {
		if u.Role == role {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// SetUserRole changes a user's role.
func (s *Store) SetUserRole(id uuid.UUID, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	u.Role = role
	u.UpdatedAt = s.now()
	return *u, nil
}

// SetUserVerified flips a user's verification flag.
func (s *Store) SetUserVerified(id uuid.UUID, verified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsVerified = verified
	u.UpdatedAt = s.now()
	return nil
}
