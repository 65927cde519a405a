package website

import (
	"net/http"
	"time"

	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

const homeNewsCount = 3
const homeArticlesCount = 3

func Index(c *RequestContext) ResponseData {
	facts, err := scadata.FetchNewsFacts(c, c.Conn, scadata.NewsQuery{Limit: homeNewsCount})
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch news for the homepage"))
	}
	articles, err := scadata.FetchArticles(c, c.Conn)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to fetch articles for the homepage"))
	}

	now := time.Now()
	var latestNews []templates.NewsItem
	for _, fact := range facts {
		latestNews = append(latestNews, templates.NewsItemToTemplate(fact, fact.Upcoming(now)))
	}
	var latestArticles []templates.Article
	for _, article := range articles {
		if len(latestArticles) >= homeArticlesCount {
			break
		}
		latestArticles = append(latestArticles, templates.ArticleToTemplate(article, nil, nil))
	}

	var res ResponseData
	res.MustWriteTemplate("index.html", struct {
		templates.BaseData
		LatestNews     []templates.NewsItem
		LatestArticles []templates.Article
	}{
		BaseData:       getBaseData(c, ""),
		LatestNews:     latestNews,
		LatestArticles: latestArticles,
	})
	return res
}

func About(c *RequestContext) ResponseData {
	var res ResponseData
	res.MustWriteTemplate("about.html", getBaseData(c, "About"))
	return res
}

func Plans(c *RequestContext) ResponseData {
	var res ResponseData
	res.MustWriteTemplate("plans.html", getBaseData(c, "Coaching plans"))
	return res
}

func ContactPage(c *RequestContext) ResponseData {
	var res ResponseData
	res.MustWriteTemplate("contact.html", struct {
		templates.BaseData
		ContactApiUrl string
	}{
		BaseData:      getBaseData(c, "Contact"),
		ContactApiUrl: siteurl.BuildAPIContact(),
	})
	return res
}
