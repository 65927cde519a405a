package scadata

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/smartchessacademy/website/src/oops"
)

func TestIsUniqueViolation(t *testing.T) {
	conflict := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.True(t, isUniqueViolation(conflict))
	assert.True(t, isUniqueViolation(oops.New(conflict, "failed to update profile")))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}
