package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel provides shared identity and timestamp fields for all records.
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnsureID generates a UUID for new records.
func (b *BaseModel) EnsureID() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
}
