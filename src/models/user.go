package models

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus int

const (
	UserStatusInactive  UserStatus = 1 // email not yet confirmed
	UserStatusConfirmed UserStatus = 2
)

// A User is an identity record: the thing you log in as. Display-facing
// fields live on the associated Profile, which shares the user's id.
type User struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Status    UserStatus `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	LastLogin *time.Time `db:"last_login"`
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusConfirmed
}
