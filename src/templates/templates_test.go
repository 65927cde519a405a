package templates

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartchessacademy/website/src/content"
	"github.com/smartchessacademy/website/src/models"
)

func TestInitParsesAllTemplates(t *testing.T) {
	Init()

	for _, name := range []string{
		"index.html", "about.html", "plans.html", "contact.html",
		"puzzles.html", "watch.html", "tournaments.html", "tournament_details.html", "studies.html",
		"news.html", "news_item.html", "articles.html", "article.html",
		"forum.html", "forum_post.html", "forum_editor.html", "comment_editor.html", "confirm_delete.html",
		"register.html", "login.html", "profile.html",
		"fourohfour.html", "error.html",
	} {
		assert.NotNil(t, GetTemplate(name), "template %s", name)
	}

	assert.Panics(t, func() { GetTemplate("nope.html") })
}

func TestArticleRenderPreservesBlockOrder(t *testing.T) {
	Init()

	article := &models.Article{
		ID:          uuid.New(),
		Slug:        "test-article",
		Title:       "Test Article",
		Author:      "Coach",
		PublishedAt: time.Now(),
	}
	blocks := []content.Block{
		content.HeadingBlock{Level: 2, Text: "FIRSTHEADING"},
		content.ParagraphBlock{Text: "FIRSTPARAGRAPH"},
		content.HeadingBlock{Level: 3, Text: "SECONDHEADING"},
		content.ParagraphBlock{Text: "SECONDPARAGRAPH"},
	}

	data := struct {
		BaseData
		Article Article
		BackUrl string
	}{
		Article: ArticleToTemplate(article, blocks, nil),
		BackUrl: "/articles",
	}

	var buf bytes.Buffer
	err := GetTemplate("article.html").Execute(&buf, data)
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, "<h2>FIRSTHEADING</h2>")
	assert.Contains(t, html, "<h3>SECONDHEADING</h3>")

	order := []string{"FIRSTHEADING", "FIRSTPARAGRAPH", "SECONDHEADING", "SECONDPARAGRAPH"}
	lastIndex := -1
	for _, marker := range order {
		index := strings.Index(html, marker)
		require.GreaterOrEqual(t, index, 0, "marker %s missing from output", marker)
		assert.Greater(t, index, lastIndex, "marker %s out of order", marker)
		lastIndex = index
	}
}

func TestArticleChessboardBlock(t *testing.T) {
	Init()

	article := &models.Article{
		ID:   uuid.New(),
		Slug: "board-article",
	}
	blocks := []content.Block{
		content.ChessboardBlock{PGN: "1. e4 e5", Caption: "Open game"},
	}

	data := struct {
		BaseData
		Article Article
		BackUrl string
	}{
		Article: ArticleToTemplate(article, blocks, map[int]int{0: 1}),
		BackUrl: "/articles",
	}

	var buf bytes.Buffer
	err := GetTemplate("article.html").Execute(&buf, data)
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, "1 / 2")
	assert.Contains(t, html, "Open game")
	assert.Contains(t, html, "data-fen=")
}
