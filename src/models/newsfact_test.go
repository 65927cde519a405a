package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewsFactUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventDate time.Time
		upcoming  bool
	}{
		{"yesterday", time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), false},
		{"earlier today", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"tomorrow", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), true},
		{"far future", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"far past", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fact := NewsFact{EventDate: test.eventDate}
			assert.Equal(t, test.upcoming, fact.Upcoming(now))
		})
	}
}
