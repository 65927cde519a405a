package models

import (
	"time"

	"github.com/google/uuid"
)

// A Profile holds the public-facing details of a user. It shares the user's
// id and is created alongside the user at registration.
type Profile struct {
	ID              uuid.UUID `db:"id"`
	Username        string    `db:"username"`
	FullName        string    `db:"full_name"`
	LichessUsername string    `db:"lichess_username"`
	AvatarUrl       string    `db:"avatar_url"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const AnonymousName = "Anonymous"

// The name shown next to a user's posts and comments. Falls back to a label
// derived from the user id when the profile was never filled in.
func (p *Profile) DisplayName() string {
	if p == nil {
		return AnonymousName
	}
	if p.FullName != "" {
		return p.FullName
	}
	return "User " + p.ID.String()[:8]
}
