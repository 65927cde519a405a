package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthor(t *testing.T) {
	author := &User{ID: uuid.New()}
	someoneElse := &User{ID: uuid.New()}

	post := &ForumPost{UserID: &author.ID}
	assert.True(t, post.IsAuthor(author))
	assert.False(t, post.IsAuthor(someoneElse))
	assert.False(t, post.IsAuthor(nil))

	anonymous := &ForumPost{UserID: nil}
	assert.False(t, anonymous.IsAuthor(author))

	comment := &ForumComment{UserID: &author.ID}
	assert.True(t, comment.IsAuthor(author))
	assert.False(t, comment.IsAuthor(someoneElse))
	assert.False(t, comment.IsAuthor(nil))
}
