package website

import (
	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

func getBaseData(c *RequestContext, title string) templates.BaseData {
	templateUser := templates.UserToTemplate(c.CurrentUser, c.CurrentProfile)
	templateSession := templates.SessionToTemplate(c.CurrentSession)

	notices := getNoticesFromCookie(c)

	return templates.BaseData{
		Title:   title,
		Notices: notices,

		CurrentUrl:   c.FullUrl(),
		LoginPageUrl: siteurl.BuildLogin(c.FullUrl()),

		User:    templateUser,
		Session: templateSession,

		Header: templates.Header{
			HomepageUrl:    siteurl.BuildHomepage(),
			AboutUrl:       siteurl.BuildAbout(),
			PlansUrl:       siteurl.BuildPlans(),
			ArticlesUrl:    siteurl.BuildArticles(),
			NewsUrl:        siteurl.BuildNews(),
			ForumUrl:       siteurl.BuildForum(1),
			PuzzlesUrl:     siteurl.BuildPuzzles(),
			WatchUrl:       siteurl.BuildWatch(),
			TournamentsUrl: siteurl.BuildTournaments(),
			StudiesUrl:     siteurl.BuildStudies(),
			ContactUrl:     siteurl.BuildContactPage(),

			ProfileUrl:  siteurl.BuildProfile(),
			RegisterUrl: siteurl.BuildRegister(),
			LogoutUrl:   siteurl.BuildLogout(),
		},
		Footer: templates.Footer{
			HomepageUrl:      siteurl.BuildHomepage(),
			AboutUrl:         siteurl.BuildAbout(),
			ContactUrl:       siteurl.BuildContactPage(),
			NewsletterApiUrl: siteurl.BuildAPINewsletter(),
			ContactEmail:     config.Config.ContactEmail,
		},
	}
}
