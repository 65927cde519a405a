package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMarkdown(t *testing.T) {
	html := string(ParseMarkdown("# Club Night\n\nBring your own *board*."))
	assert.Contains(t, html, "<h1>Club Night</h1>")
	assert.Contains(t, html, "<em>board</em>")
}

func TestLinkifyText(t *testing.T) {
	html := string(LinkifyText("Check out https://lichess.org/study/abc for details."))
	assert.Contains(t, html, `<a href="https://lichess.org/study/abc"`)
	assert.Contains(t, html, "</a> for details.")
}

func TestLinkifyTextEscapesHtml(t *testing.T) {
	html := string(LinkifyText("<script>alert('hi')</script>"))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestLinkifyTextParagraphs(t *testing.T) {
	html := string(LinkifyText("first\n\nsecond"))
	assert.Contains(t, html, "<p>first</p>")
	assert.Contains(t, html, "<p>second</p>")
}

func TestLinkifyTextBareDomain(t *testing.T) {
	html := string(LinkifyText("see lichess.org sometime"))
	assert.Contains(t, html, `<a href="https://lichess.org"`)
	assert.Contains(t, html, ">lichess.org</a>")
}
