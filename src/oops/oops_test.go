package oops

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	bare := New(nil, "database %s on fire", "forum_post")
	assert.Equal(t, "database forum_post on fire", bare.Error())

	wrapped := New(errors.New("connection refused"), "failed to fetch post")
	assert.Equal(t, "failed to fetch post: connection refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("no rows")
	err := New(inner, "failed to fetch comments")
	assert.True(t, errors.Is(err, inner))
}

func TestTrace(t *testing.T) {
	err := New(nil, "whoops").(*Error)
	assert.NotEmpty(t, err.Stack)

	// The first few frames belong to oops itself; the caller must appear
	// somewhere below them.
	var functions []string
	for _, frame := range err.Stack {
		functions = append(functions, frame.Function)
	}
	assert.Contains(t, strings.Join(functions, "\n"), "TestTrace")
}
