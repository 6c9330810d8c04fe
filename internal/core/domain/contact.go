package domain

import (
	"errors"
	"time"
)

var ErrMessageNotFound = errors.New("contact message not found")
var ErrInvalidMessage = errors.New("name, email and message are required")

// ContactMessage is a public enquiry submitted without authentication.
type ContactMessage struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Message    string    `json:"message" bson:"message"`
	Read       bool      `json:"read" bson:"read"`
	ReceivedAt time.Time `json:"received_at" bson:"received_at"`
}
