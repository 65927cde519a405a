package models

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID        string    `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CSRFToken string    `db:"csrf_token"`
	ExpiresAt time.Time `db:"expires_at"`
}
