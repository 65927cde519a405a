package siteurl

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/oops"
)

var RegexHomepage = regexp.MustCompile("^/$")

func BuildHomepage() string {
	return Url("/", nil)
}

var RegexAbout = regexp.MustCompile("^/about$")

func BuildAbout() string {
	return Url("/about", nil)
}

var RegexPlans = regexp.MustCompile("^/plans$")

func BuildPlans() string {
	return Url("/plans", nil)
}

var RegexContactPage = regexp.MustCompile("^/contact$")

func BuildContactPage() string {
	return Url("/contact", nil)
}

var RegexPuzzles = regexp.MustCompile("^/puzzles$")

func BuildPuzzles() string {
	return Url("/puzzles", nil)
}

var RegexWatch = regexp.MustCompile("^/watch$")

func BuildWatch() string {
	return Url("/watch", nil)
}

var RegexTournaments = regexp.MustCompile("^/tournaments$")

func BuildTournaments() string {
	return Url("/tournaments", nil)
}

var RegexTournamentDetails = regexp.MustCompile(`^/tournaments/(?P<id>[a-zA-Z0-9]+)$`)

func BuildTournamentDetails(tournamentID string) string {
	return Url("/tournaments/"+tournamentID, nil)
}

var RegexStudies = regexp.MustCompile("^/studies$")

func BuildStudies() string {
	return Url("/studies", nil)
}

var RegexNews = regexp.MustCompile("^/news$")

func BuildNews() string {
	return Url("/news", nil)
}

var reUUID = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

var RegexNewsItem = regexp.MustCompile(`^/news/(?P<id>` + reUUID + `)$`)

func BuildNewsItem(id uuid.UUID) string {
	return Url("/news/"+id.String(), nil)
}

var RegexArticles = regexp.MustCompile("^/articles$")

func BuildArticles() string {
	return Url("/articles", nil)
}

var RegexArticle = regexp.MustCompile(`^/articles/(?P<slug>[a-zA-Z0-9\-_]+)$`)

func BuildArticle(slug string) string {
	return Url("/articles/"+slug, nil)
}

// BuildArticleWithMove addresses a specific position of a chessboard
// block, so board navigation links stay plain GETs.
func BuildArticleWithMove(slug string, board int, move int) string {
	if move < 0 {
		panic(oops.New(nil, "invalid move number (%d), must be >= 0", move))
	}
	return Url("/articles/"+slug, []Q{
		{Name: "board", Value: strconv.Itoa(board)},
		{Name: "move", Value: strconv.Itoa(move)},
	})
}

var RegexForum = regexp.MustCompile(`^/forum(/(?P<page>\d+))?$`)

func BuildForum(page int) string {
	if page < 1 {
		panic(oops.New(nil, "invalid forum page (%d), must be >= 1", page))
	}
	if page == 1 {
		return Url("/forum", nil)
	}
	return Url("/forum/"+strconv.Itoa(page), nil)
}

var RegexForumNewPost = regexp.MustCompile("^/forum/new$")

func BuildForumNewPost() string {
	return Url("/forum/new", nil)
}

var RegexForumPost = regexp.MustCompile(`^/forum/t/(?P<id>` + reUUID + `)$`)

func BuildForumPost(id uuid.UUID) string {
	return Url("/forum/t/"+id.String(), nil)
}

var RegexForumPostEdit = regexp.MustCompile(`^/forum/t/(?P<id>` + reUUID + `)/edit$`)

func BuildForumPostEdit(id uuid.UUID) string {
	return Url("/forum/t/"+id.String()+"/edit", nil)
}

var RegexForumPostDelete = regexp.MustCompile(`^/forum/t/(?P<id>` + reUUID + `)/delete$`)

func BuildForumPostDelete(id uuid.UUID) string {
	return Url("/forum/t/"+id.String()+"/delete", nil)
}

var RegexForumNewComment = regexp.MustCompile(`^/forum/t/(?P<id>` + reUUID + `)/comment$`)

func BuildForumNewComment(postID uuid.UUID) string {
	return Url("/forum/t/"+postID.String()+"/comment", nil)
}

var RegexForumCommentEdit = regexp.MustCompile(`^/forum/comment/(?P<id>` + reUUID + `)/edit$`)

func BuildForumCommentEdit(commentID uuid.UUID) string {
	return Url("/forum/comment/"+commentID.String()+"/edit", nil)
}

var RegexForumCommentDelete = regexp.MustCompile(`^/forum/comment/(?P<id>` + reUUID + `)/delete$`)

func BuildForumCommentDelete(commentID uuid.UUID) string {
	return Url("/forum/comment/"+commentID.String()+"/delete", nil)
}

var RegexRegister = regexp.MustCompile("^/register$")

func BuildRegister() string {
	return Url("/register", nil)
}

var RegexLogin = regexp.MustCompile("^/login$")

func BuildLogin(redirectPath string) string {
	var query []Q
	if redirectPath != "" && redirectPath != "/" {
		query = append(query, Q{Name: "redirect", Value: redirectPath})
	}
	return Url("/login", query)
}

var RegexLogout = regexp.MustCompile("^/logout$")

func BuildLogout() string {
	return Url("/logout", nil)
}

var RegexProfile = regexp.MustCompile("^/profile$")

func BuildProfile() string {
	return Url("/profile", nil)
}

var RegexProfileAvatar = regexp.MustCompile("^/profile/avatar$")

func BuildProfileAvatar() string {
	return Url("/profile/avatar", nil)
}

var RegexAPIContact = regexp.MustCompile("^/api/contact$")

func BuildAPIContact() string {
	return Url("/api/contact", nil)
}

var RegexAPINewsletter = regexp.MustCompile("^/api/newsletter$")

func BuildAPINewsletter() string {
	return Url("/api/newsletter", nil)
}

var RegexPublic = regexp.MustCompile("^/public/.+$")

func BuildPublic(filepath string) string {
	return StaticUrl(filepath, nil)
}

// BuildS3Asset is the public address of an uploaded asset, served
// straight from the storage bucket.
func BuildS3Asset(s3key string) string {
	return config.Config.Storage.Endpoint + "/" + config.Config.Storage.Bucket + "/" + s3key
}
