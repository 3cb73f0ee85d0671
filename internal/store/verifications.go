package store

import (
	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
)

// InsertVerification records a submitted identity check. The user reference
// is not checked here; historical data may point at deleted accounts and
// review operations tolerate that.
func (s *Store) InsertVerification(v *models.VerificationRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.EnsureID()
	if v.SubmittedAt.IsZero() {
		v.SubmittedAt = s.now()
	}
	v.CreatedAt = v.SubmittedAt
	v.UpdatedAt = v.SubmittedAt

	stored := *v
	s.requests = append(s.requests, &stored)
}

// VerificationByID fetches a request copy by id.
func (s *Store) VerificationByID(id uuid.UUID) (models.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.findVerification(id)
	if !ok {
		return models.VerificationRequest{}, ErrNotFound
	}
	return *v, nil
}

// PendingVerifications returns requests still awaiting review, oldest first.
func (s *Store) PendingVerifications() []models.VerificationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.VerificationRequest
	for _, v := range s.requests {
		if v.Status == models.VerificationPending {
			out = append(out, *v)
		}
	}
	return out
}

// HasPendingVerification reports whether a user already has an open request.
func (s *Store) HasPendingVerification(userID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.requests {
		if v.UserID == userID && v.Status == models.VerificationPending {
			return true
		}
	}
	return false
}

// ApproveVerification marks a pending request approved and flips the owning
// user's verification flag in one critical section. A request whose user no
// longer exists is still approved; the flag flip is simply skipped.
func (s *Store) ApproveVerification(id uuid.UUID) (models.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.findVerification(id)
	if !ok || v.Status != models.VerificationPending {
		return models.VerificationRequest{}, ErrNotFound
	}

	now := s.now()
	v.Status = models.VerificationApproved
	v.ReviewedAt = &now
	v.UpdatedAt = now

	if u, ok := s.users[v.UserID]; ok {
		u.IsVerified = true
		u.UpdatedAt = now
	}
	return *v, nil
}

// RejectVerification marks a pending request rejected, keeping the record
// and the reviewer's reason.
func (s *Store) RejectVerification(id uuid.UUID, reason string) (models.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.findVerification(id)
	if !ok || v.Status != models.VerificationPending {
		return models.VerificationRequest{}, ErrNotFound
	}

	now := s.now()
	v.Status = models.VerificationRejected
	v.Reason = reason
	v.ReviewedAt = &now
	v.UpdatedAt = now
	return *v, nil
}

func (s *Store) findVerification(id uuid.UUID) (*models.VerificationRequest, bool) {
	for _, v := range s.requests {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}
