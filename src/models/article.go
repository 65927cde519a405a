package models

import (
	"time"

	"github.com/google/uuid"
)

// An Article is a structured piece of editorial content. Its body is an
// ordered sequence of typed blocks stored as jsonb; see the content package
// for the block types and their rendering.
type Article struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"` // unique, the sole external lookup key
	Title       string    `db:"title"`
	Author      string    `db:"author"` // free text, not a Profile reference
	Description string    `db:"description"`
	ContentJSON []byte    `db:"content_json"`
	PublishedAt time.Time `db:"published_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
