package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/authz"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// VerificationService manages the identity verification workflow that gates
// order creation.
type VerificationService struct {
	store *store.Store
}

// NewVerificationService constructs VerificationService.
func NewVerificationService(st *store.Store) *VerificationService {
	return &VerificationService{store: st}
}

// VerificationInput carries a customer's submitted identity details. The
// document references point at uploads held by external storage.
type VerificationInput struct {
	FullName  string
	Phone     string
	GovIDURL  string
	SelfieURL string
}

// Submit files a verification request for the acting customer. Customers who
// are already verified, or who already have a request awaiting review,
// cannot file another one.
func (s *VerificationService) Submit(actor models.User, in VerificationInput) (models.VerificationRequest, error) {
	if actor.Role != models.RoleUser {
		return models.VerificationRequest{}, apperr.Forbidden("only customer accounts submit verification")
	}
	if actor.IsVerified {
		return models.VerificationRequest{}, apperr.Conflict("account is already verified")
	}
	if s.store.HasPendingVerification(actor.ID) {
		return models.VerificationRequest{}, apperr.Conflict("a verification request is already awaiting review")
	}

	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.FullName == "" {
		return models.VerificationRequest{}, apperr.Validation("full name is required")
	}
	if in.Phone == "" {
		return models.VerificationRequest{}, apperr.Validation("phone number is required")
	}
	if strings.TrimSpace(in.GovIDURL) == "" || strings.TrimSpace(in.SelfieURL) == "" {
		return models.VerificationRequest{}, apperr.Validation("both a government ID and a selfie are required")
	}

	request := models.VerificationRequest{
		UserID:    actor.ID,
		FullName:  in.FullName,
		Phone:     in.Phone,
		GovIDURL:  strings.TrimSpace(in.GovIDURL),
		SelfieURL: strings.TrimSpace(in.SelfieURL),
		Status:    models.VerificationPending,
	}
	s.store.InsertVerification(&request)
	return request, nil
}

// ListPending returns requests awaiting review, oldest first.
func (s *VerificationService) ListPending(actor models.User) ([]models.VerificationRequest, error) {
	if !authz.Can(actor.Role, authz.ActionReviewVerification) {
		return nil, apperr.Forbidden("role %s may not review verification", actor.Role)
	}
	return s.store.PendingVerifications(), nil
}

// Approve accepts a pending request and marks its owner verified. Requests
// whose owner no longer exists are still cleared from the queue.
func (s *VerificationService) Approve(actor models.User, requestID uuid.UUID) error {
	if !authz.Can(actor.Role, authz.ActionReviewVerification) {
		return apperr.Forbidden("role %s may not review verification", actor.Role)
	}

	if _, err := s.store.ApproveVerification(requestID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("no pending verification request %s", requestID)
		}
		return err
	}
	return nil
}

// Reject declines a pending request, recording the reviewer's reason so the
// customer can see the outcome.
func (s *VerificationService) Reject(actor models.User, requestID uuid.UUID, reason string) error {
	if !authz.Can(actor.Role, authz.ActionReviewVerification) {
		return apperr.Forbidden("role %s may not review verification", actor.Role)
	}

	if _, err := s.store.RejectVerification(requestID, strings.TrimSpace(reason)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("no pending verification request %s", requestID)
		}
		return err
	}
	return nil
}
