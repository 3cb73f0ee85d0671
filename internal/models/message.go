package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in an order's conversation thread. The receiver is
// inferred when the message is sent: customers write to the assigned
// processor, staff write to the order's owner.
type Message struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	ReceiverID     uuid.UUID `json:"receiver_id"`
	SenderFullName string    `json:"sender_full_name"`
	Text           string    `json:"text,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	VideoURL       string    `json:"video_url,omitempty"`
	DocURL         string    `json:"doc_url,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
