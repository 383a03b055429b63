package models

import (
	"time"

	"github.com/google/uuid"
)

// VideoKind distinguishes portfolio reels from long-form videos.
type VideoKind string

const (
	VideoKindReel  VideoKind = "reel"
	VideoKindVideo VideoKind = "video"
)

// DefaultVideoTitle is used when an upload is submitted without a title.
const DefaultVideoTitle = "Untitled"

// Valid reports whether k is a known kind.
func (k VideoKind) Valid() bool {
	return k == VideoKindReel || k == VideoKindVideo
}

// Video is a portfolio item hosted on the media store.
type Video struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MediaURL    string    `json:"media_url"`
	MediaRef    string    `json:"media_ref"` // object key, needed to delete the remote copy
	Kind        VideoKind `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}
