package models

import (
	"time"

	"github.com/google/uuid"
)

// A ForumPost's user id may be null; such posts render as Anonymous. Only the
// matching user may edit or delete a post.
type ForumPost struct {
	ID        uuid.UUID  `db:"id"`
	UserID    *uuid.UUID `db:"user_id"`
	Title     string     `db:"title"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type ForumComment struct {
	ID        uuid.UUID  `db:"id"`
	PostID    uuid.UUID  `db:"post_id"`
	UserID    *uuid.UUID `db:"user_id"`
	Content   string     `db:"content"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (p *ForumPost) IsAuthor(u *User) bool {
	return u != nil && p.UserID != nil && *p.UserID == u.ID
}

func (c *ForumComment) IsAuthor(u *User) bool {
	return u != nil && c.UserID != nil && *c.UserID == u.ID
}
