package scadata

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/oops"
)

var ErrAlreadySubscribed = errors.New("email is already subscribed")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// SubscribeToNewsletter records the address. The unique index on email
// is the source of truth for duplicates, there is no pre-check.
func SubscribeToNewsletter(ctx context.Context, conn db.ConnOrTx, email string) error {
	_, err := conn.Exec(ctx,
		"INSERT INTO newsletter_subscriber (email) VALUES ($1)",
		strings.ToLower(strings.TrimSpace(email)),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadySubscribed
		}
		return oops.New(err, "failed to subscribe email to newsletter")
	}

	return nil
}
