package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	id := uuid.MustParse("a81bc81b-dead-4e5d-abff-90865d1e13b1")

	t.Run("full name wins", func(t *testing.T) {
		p := &Profile{ID: id, FullName: "Magnus Smith"}
		assert.Equal(t, "Magnus Smith", p.DisplayName())
	})
	t.Run("falls back to user id fragment", func(t *testing.T) {
		p := &Profile{ID: id}
		assert.Equal(t, "User a81bc81b", p.DisplayName())
	})
	t.Run("nil profile is anonymous", func(t *testing.T) {
		var p *Profile
		assert.Equal(t, AnonymousName, p.DisplayName())
	})
}
