package scadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewsFactsQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		qb := newsFactsQuery(NewsQuery{})
		assert.NotContains(t, qb.String(), "event_type =")
		assert.NotContains(t, qb.String(), "LIMIT")
		assert.Empty(t, qb.Args())
	})

	t.Run("event type filter", func(t *testing.T) {
		qb := newsFactsQuery(NewsQuery{EventType: "tournament"})
		assert.Contains(t, qb.String(), "event_type = $1")
		assert.Equal(t, []any{"tournament"}, qb.Args())
	})

	t.Run("limit", func(t *testing.T) {
		qb := newsFactsQuery(NewsQuery{EventType: "camp", Limit: 3})
		assert.Contains(t, qb.String(), "event_type = $1")
		assert.Contains(t, qb.String(), "LIMIT $2")
		assert.Equal(t, []any{"camp", 3}, qb.Args())
	})
}
