package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationStatus tracks the review outcome of an identity check.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// VerificationRequest is a user's submitted identity check. Approving it
// marks the owning user as verified; rejecting it keeps the record around
// with the reviewer's reason so the user can see why.
type VerificationRequest struct {
	BaseModel
	UserID      uuid.UUID          `json:"user_id"`
	FullName    string             `json:"full_name"`
	Phone       string             `json:"phone"`
	GovIDURL    string             `json:"gov_id_url"`
	SelfieURL   string             `json:"selfie_url"`
	Status      VerificationStatus `json:"status"`
	Reason      string             `json:"reason,omitempty"`
	SubmittedAt time.Time          `json:"submitted_at"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
}
