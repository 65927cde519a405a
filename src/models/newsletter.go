package models

import "time"

type NewsletterSubscriber struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"` // unique
	SubscribedAt time.Time `db:"subscribed_at"`
}
