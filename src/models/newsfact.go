package models

import (
	"time"

	"github.com/google/uuid"
)

// A NewsFact is either retrospective news or an upcoming event; which one is
// derived at read time from the event date, never stored.
type NewsFact struct {
	ID        uuid.UUID `db:"id"`
	EventDate time.Time `db:"event_date"`
	EventTime string    `db:"event_time"`
	Title     string    `db:"title"`
	Content   string    `db:"content"` // markdown
	Location  string    `db:"location"`
	EventType string    `db:"event_type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Upcoming reports whether the event date is today or later, relative to the
// provided current time. Events earlier today still count as upcoming.
func (n *NewsFact) Upcoming(now time.Time) bool {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !n.EventDate.Before(startOfToday)
}
