package lichess

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAtomFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>lichess.org blog</title>
	<entry>
		<id>tag:blog,2025:post1</id>
		<title>Titled Arena Announcement</title>
		<author><name>thibault</name></author>
		<published>2025-06-01T12:00:00Z</published>
		<link href="https://lichess.org/@/Lichess/blog/titled-arena/post1ID"/>
		<content type="html">&lt;p&gt;Another titled arena is coming.&lt;/p&gt;</content>
	</entry>
	<entry>
		<id>tag:blog,2025:post2</id>
		<title>Spring Marathon</title>
		<published>2025-05-20T08:00:00Z</published>
		<link href="https://lichess.org/@/Lichess/blog/spring-marathon/post2ID"/>
		<content type="html">&lt;p&gt;24 hours of chess.&lt;/p&gt;</content>
	</entry>
</feed>`

func TestBlogPosts(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blog.atom", r.URL.Path)
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(testAtomFeed))
	}))

	page, err := client.BlogPosts(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.NbResults)
	require.Len(t, page.CurrentPageResults, 3)

	// The curated post is always pinned first.
	assert.Equal(t, featuredBlogPost.ID, page.CurrentPageResults[0].ID)

	first := page.CurrentPageResults[1]
	assert.Equal(t, "post1ID", first.ID)
	assert.Equal(t, "Titled Arena Announcement", first.Title)
	assert.Equal(t, "thibault", first.Author)
	assert.Contains(t, first.Html, "titled arena")
	assert.NotZero(t, first.Date)

	second := page.CurrentPageResults[2]
	assert.Equal(t, "post2ID", second.ID)
	assert.Equal(t, "Lichess", second.Author)
	assert.Equal(t, "24 hours of chess.", second.Shortlede)
}

func TestBlogFeedUnavailable(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.BlogPosts(context.Background(), 1)
	assert.Error(t, err)
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "plain", stripTags("plain"))
	assert.Equal(t, "hello world", stripTags("<p>hello <b>world</b></p>"))
}
