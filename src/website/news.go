package website

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

func NewsIndex(c *RequestContext) ResponseData {
	// ?type=tournament etc. narrows the list to one kind of event.
	facts, err := scadata.FetchNewsFacts(c, c.Conn, scadata.NewsQuery{
		EventType: strings.TrimSpace(c.URL().Query().Get("type")),
	})
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch news"))
	}

	now := time.Now()
	var items []templates.NewsItem
	for _, fact := range facts {
		items = append(items, templates.NewsItemToTemplate(fact, fact.Upcoming(now)))
	}

	var blogPosts []templates.BlogPostView
	blogPage, blogErr := c.Lichess.BlogPosts(c, 1)
	if blogErr == nil {
		for _, post := range blogPage.CurrentPageResults {
			blogPosts = append(blogPosts, templates.BlogPostToTemplate(post))
		}
	}

	var res ResponseData
	res.MustWriteTemplate("news.html", struct {
		templates.BaseData
		Items []templates.NewsItem
		Blog  templates.LichessSection[[]templates.BlogPostView]
	}{
		BaseData: getBaseData(c, "News"),
		Items:    items,
		Blog:     lichessSection(blogPosts, blogErr),
	})
	return res
}

func NewsItem(c *RequestContext) ResponseData {
	id, err := uuid.Parse(c.PathParams["id"])
	if err != nil {
		return FourOhFour(c)
	}

	fact, err := scadata.FetchNewsFact(c, c.Conn, id)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch news item"))
	}

	var res ResponseData
	res.MustWriteTemplate("news_item.html", struct {
		templates.BaseData
		Item    templates.NewsItem
		BackUrl string
	}{
		BaseData: getBaseData(c, fact.Title),
		Item:     templates.NewsItemToTemplate(fact, fact.Upcoming(time.Now())),
		BackUrl:  siteurl.BuildNews(),
	})
	return res
}
