package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a published blog post. ImageURL is nil when the post has no cover image.
type Blog struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	ImageURL   *string   `json:"image_url,omitempty"`
	Paragraph1 string    `json:"paragraph1"`
	Paragraph2 string    `json:"paragraph2"`
	Quote      string    `json:"quote"`
	CreatedAt  time.Time `json:"created_at"`
}

// BlogUpdate carries an edit. A nil ImageURL keeps the stored image.
type BlogUpdate struct {
	Title      string
	Paragraph1 string
	Paragraph2 string
	Quote      string
	ImageURL   *string
}
