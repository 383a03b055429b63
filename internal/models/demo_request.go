package models

import (
	"time"

	"github.com/google/uuid"
)

// DemoRequest is a "book a demo" callback request. Mobile is unique.
type DemoRequest struct {
	ID        uuid.UUID `json:"id"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}
