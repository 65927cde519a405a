package scadata

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
)

type NewsQuery struct {
	EventType string // empty means all types
	Limit     int    // 0 means no limit
}

// FetchNewsFacts returns news entries, soonest/latest event first.
// Whether an entry counts as upcoming is decided at render time from
// the event date.
func FetchNewsFacts(ctx context.Context, conn db.ConnOrTx, q NewsQuery) ([]*models.NewsFact, error) {
	qb := newsFactsQuery(q)
	facts, err := db.Query[models.NewsFact](ctx, conn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch news")
	}

	return facts, nil
}

func newsFactsQuery(q NewsQuery) *db.QueryBuilder {
	var qb db.QueryBuilder
	qb.Add(`
		SELECT $columns
		FROM news_fact
		WHERE TRUE
	`)
	if q.EventType != "" {
		qb.Add(`AND event_type = $?`, q.EventType)
	}
	qb.Add(`ORDER BY event_date DESC, created_at DESC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $?`, q.Limit)
	}
	return &qb
}

func FetchNewsFact(ctx context.Context, conn db.ConnOrTx, id uuid.UUID) (*models.NewsFact, error) {
	fact, err := db.QueryOne[models.NewsFact](ctx, conn,
		"SELECT $columns FROM news_fact WHERE id = $1",
		id,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, db.NotFound
		}
		return nil, oops.New(err, "failed to fetch news entry")
	}

	return fact, nil
}
