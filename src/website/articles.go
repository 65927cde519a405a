package website

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/smartchessacademy/website/src/content"
	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

func ArticleIndex(c *RequestContext) ResponseData {
	articles, err := scadata.FetchArticles(c, c.Conn)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch articles"))
	}

	var items []templates.Article
	for _, article := range articles {
		items = append(items, templates.ArticleToTemplate(article, nil, nil))
	}

	var res ResponseData
	res.MustWriteTemplate("articles.html", struct {
		templates.BaseData
		Articles []templates.Article
	}{
		BaseData: getBaseData(c, "Articles"),
		Articles: items,
	})
	return res
}

func Article(c *RequestContext) ResponseData {
	article, err := scadata.FetchArticleBySlug(c, c.Conn, c.PathParams["slug"])
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch article"))
	}

	blocks, err := content.DecodeBlocks(article.ContentJSON)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to decode article content"))
	}

	var res ResponseData
	res.MustWriteTemplate("article.html", struct {
		templates.BaseData
		Article templates.Article
		BackUrl string
	}{
		BaseData: getBaseData(c, article.Title),
		Article:  templates.ArticleToTemplate(article, blocks, boardCursorsFromQuery(c)),
		BackUrl:  siteurl.BuildArticles(),
	})
	return res
}

// Board navigation is plain links: ?board=N&move=M asks for theNth
// chessboard in the article to sit at move M. Out-of-range values are
// clamped when the board is built, garbage means the start position.
func boardCursorsFromQuery(c *RequestContext) map[int]int {
	q := c.URL().Query()
	board, err := strconv.Atoi(q.Get("board"))
	if err != nil || board < 0 {
		return nil
	}
	move, err := strconv.Atoi(q.Get("move"))
	if err != nil || move < 0 {
		return nil
	}
	return map[int]int{board: move}
}
