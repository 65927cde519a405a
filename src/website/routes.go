package website

import (
	"net/http"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartchessacademy/website/src/lichess"
	"github.com/smartchessacademy/website/src/siteurl"
)

func NewWebsiteRoutes(conn *pgxpool.Pool, lichessClient *lichess.Client) http.Handler {
	router := &Router{}
	routes := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			attachDeps(conn, lichessClient),
			trackRequestMiddleware,
			panicCatcherMiddleware,
			logContextErrorsMiddleware,
			storeNoticesInCookieMiddleware,
			loadCommonData,
		},
	}

	authed := routes.WithMiddleware(needsAuth)
	authedSubmit := routes.WithMiddleware(needsAuth, csrfMiddleware)

	routes.GET(siteurl.RegexHomepage, Index)
	routes.GET(siteurl.RegexAbout, About)
	routes.GET(siteurl.RegexPlans, Plans)
	routes.GET(siteurl.RegexContactPage, ContactPage)

	routes.GET(siteurl.RegexPuzzles, Puzzles)
	routes.GET(siteurl.RegexWatch, Watch)
	routes.GET(siteurl.RegexTournaments, Tournaments)
	routes.GET(siteurl.RegexTournamentDetails, TournamentDetails)
	routes.GET(siteurl.RegexStudies, Studies)

	routes.GET(siteurl.RegexNews, NewsIndex)
	routes.GET(siteurl.RegexNewsItem, NewsItem)
	routes.GET(siteurl.RegexArticles, ArticleIndex)
	routes.GET(siteurl.RegexArticle, Article)

	// The order matters here: /forum/new must not be swallowed by the
	// paginated forum index route.
	authed.GET(siteurl.RegexForumNewPost, ForumNewPost)
	authedSubmit.POST(siteurl.RegexForumNewPost, ForumNewPostSubmit)
	routes.GET(siteurl.RegexForumPost, ForumPost)
	authed.GET(siteurl.RegexForumPostEdit, ForumPostEdit)
	authedSubmit.POST(siteurl.RegexForumPostEdit, ForumPostEditSubmit)
	authed.GET(siteurl.RegexForumPostDelete, ForumPostDelete)
	authedSubmit.POST(siteurl.RegexForumPostDelete, ForumPostDeleteSubmit)
	authedSubmit.POST(siteurl.RegexForumNewComment, ForumNewCommentSubmit)
	authed.GET(siteurl.RegexForumCommentEdit, ForumCommentEdit)
	authedSubmit.POST(siteurl.RegexForumCommentEdit, ForumCommentEditSubmit)
	authed.GET(siteurl.RegexForumCommentDelete, ForumCommentDelete)
	authedSubmit.POST(siteurl.RegexForumCommentDelete, ForumCommentDeleteSubmit)
	routes.GET(siteurl.RegexForum, Forum)

	routes.GET(siteurl.RegexRegister, RegisterPage)
	routes.POST(siteurl.RegexRegister, securityTimerMiddleware(time.Second, RegisterSubmit))
	routes.GET(siteurl.RegexLogin, LoginPage)
	routes.POST(siteurl.RegexLogin, securityTimerMiddleware(time.Second, LoginSubmit))
	routes.GET(siteurl.RegexLogout, Logout)

	authed.GET(siteurl.RegexProfile, Profile)
	authedSubmit.POST(siteurl.RegexProfile, ProfileSubmit)
	authedSubmit.POST(siteurl.RegexProfileAvatar, ProfileAvatarSubmit)

	routes.POST(siteurl.RegexAPIContact, APIContact)
	routes.POST(siteurl.RegexAPINewsletter, APINewsletter)

	routes.GET(siteurl.RegexPublic, PublicFile)

	routes.AnyMethod(regexp.MustCompile("^"), FourOhFour)

	return router
}

func attachDeps(conn *pgxpool.Pool, lichessClient *lichess.Client) Middleware {
	return func(h Handler) Handler {
		return func(c *RequestContext) ResponseData {
			c.Conn = conn
			c.Lichess = lichessClient
			return h(c)
		}
	}
}

var publicFiles = http.StripPrefix("/public/", http.FileServer(http.Dir("public")))

func PublicFile(c *RequestContext) ResponseData {
	var res ResponseData
	publicFiles.ServeHTTP(&res, c.Req)
	return res
}
