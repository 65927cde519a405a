package website

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartchessacademy/website/src/logging"
	"github.com/smartchessacademy/website/src/templates"
)

func TestNoticesCookieRoundTrip(t *testing.T) {
	c := &RequestContext{Logger: logging.GlobalLogger()}

	notices := []templates.Notice{
		{Class: "success", Content: "Post updated."},
		{Class: "failure", Content: "You can only change your own posts and comments."},
	}

	serialized := serializeNoticesForCookie(c, notices)
	assert.Equal(t, notices, deserializeNoticesFromCookie(serialized))
}

func TestNoticesCookieSizeCap(t *testing.T) {
	c := &RequestContext{Logger: logging.GlobalLogger()}

	var notices []templates.Notice
	for i := 0; i < 50; i++ {
		notices = append(notices, templates.Notice{
			Class:   "failure",
			Content: template.HTML(strings.Repeat("x", 100)),
		})
	}

	serialized := serializeNoticesForCookie(c, notices)
	assert.LessOrEqual(t, len(serialized), 1024)

	// Whatever fit should still deserialize cleanly.
	survivors := deserializeNoticesFromCookie(serialized)
	assert.NotEmpty(t, survivors)
	assert.Less(t, len(survivors), len(notices))
}

func TestDeserializeGarbageNotices(t *testing.T) {
	assert.Empty(t, deserializeNoticesFromCookie(""))
	assert.Empty(t, deserializeNoticesFromCookie("no separator here"))
}
