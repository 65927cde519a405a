package scadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateForumPost(t *testing.T) {
	goodTitle := "A reasonable title"
	goodContent := strings.Repeat("deep preparation ", 10)

	assert.Empty(t, ValidateForumPost(goodTitle, goodContent))

	assert.NotEmpty(t, ValidateForumPost("hi", goodContent))
	assert.NotEmpty(t, ValidateForumPost(strings.Repeat("a", PostTitleMaxLength+1), goodContent))
	assert.NotEmpty(t, ValidateForumPost(goodTitle, "too short"))
	assert.NotEmpty(t, ValidateForumPost(goodTitle, strings.Repeat("a", PostContentMaxLength+1)))

	// Boundary values are acceptable.
	assert.Empty(t, ValidateForumPost(strings.Repeat("a", PostTitleMinLength), strings.Repeat("b", PostContentMinLength)))
	assert.Empty(t, ValidateForumPost(strings.Repeat("a", PostTitleMaxLength), strings.Repeat("b", PostContentMaxLength)))

	// A doubly-bad post reports each problem.
	assert.Len(t, ValidateForumPost("hi", "nope"), 2)
}

func TestValidateForumComment(t *testing.T) {
	assert.Empty(t, ValidateForumComment("I disagree, and here is why."))
	assert.NotEmpty(t, ValidateForumComment(""))
	assert.NotEmpty(t, ValidateForumComment(strings.Repeat("a", CommentMaxLength+1)))
	assert.Empty(t, ValidateForumComment(strings.Repeat("a", CommentMaxLength)))
}
