package siteurl

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHomepage(t *testing.T) {
	AssertRegexMatch(t, BuildHomepage(), RegexHomepage, nil)
}

func TestStaticPages(t *testing.T) {
	AssertRegexMatch(t, BuildAbout(), RegexAbout, nil)
	AssertRegexMatch(t, BuildPlans(), RegexPlans, nil)
	AssertRegexMatch(t, BuildContactPage(), RegexContactPage, nil)
}

func TestLichessPages(t *testing.T) {
	AssertRegexMatch(t, BuildPuzzles(), RegexPuzzles, nil)
	AssertRegexMatch(t, BuildWatch(), RegexWatch, nil)
	AssertRegexMatch(t, BuildTournaments(), RegexTournaments, nil)
	AssertRegexMatch(t, BuildTournamentDetails("abc123XY"), RegexTournamentDetails, map[string]string{"id": "abc123XY"})
	AssertRegexMatch(t, BuildStudies(), RegexStudies, nil)
}

func TestNews(t *testing.T) {
	id := uuid.New()
	AssertRegexMatch(t, BuildNews(), RegexNews, nil)
	AssertRegexMatch(t, BuildNewsItem(id), RegexNewsItem, map[string]string{"id": id.String()})
}

func TestArticles(t *testing.T) {
	AssertRegexMatch(t, BuildArticles(), RegexArticles, nil)
	AssertRegexMatch(t, BuildArticle("italian-game-basics"), RegexArticle, map[string]string{"slug": "italian-game-basics"})
	AssertRegexMatch(t, BuildArticleWithMove("italian-game-basics", 0, 5), RegexArticle, map[string]string{"slug": "italian-game-basics"})
	assert.Panics(t, func() { BuildArticleWithMove("slug", 0, -1) })
}

func TestForum(t *testing.T) {
	id := uuid.New()
	AssertRegexMatch(t, BuildForum(1), RegexForum, nil)
	AssertRegexMatch(t, BuildForum(3), RegexForum, map[string]string{"page": "3"})
	assert.Panics(t, func() { BuildForum(0) })
	AssertRegexMatch(t, BuildForumNewPost(), RegexForumNewPost, nil)
	AssertRegexMatch(t, BuildForumPost(id), RegexForumPost, map[string]string{"id": id.String()})
	AssertRegexMatch(t, BuildForumPostEdit(id), RegexForumPostEdit, map[string]string{"id": id.String()})
	AssertRegexMatch(t, BuildForumPostDelete(id), RegexForumPostDelete, map[string]string{"id": id.String()})
	AssertRegexMatch(t, BuildForumNewComment(id), RegexForumNewComment, map[string]string{"id": id.String()})
	AssertRegexMatch(t, BuildForumCommentEdit(id), RegexForumCommentEdit, map[string]string{"id": id.String()})
	AssertRegexMatch(t, BuildForumCommentDelete(id), RegexForumCommentDelete, map[string]string{"id": id.String()})
}

func TestForumPostDoesNotMatchNew(t *testing.T) {
	// "/forum/new" must not be swallowed by the post id route.
	assert.False(t, RegexForumPost.MatchString("/forum/new"))
	assert.False(t, RegexNewsItem.MatchString("/news/not-a-uuid"))
}

func TestAuth(t *testing.T) {
	AssertRegexMatch(t, BuildRegister(), RegexRegister, nil)
	AssertRegexMatch(t, BuildLogin("/"), RegexLogin, nil)
	AssertRegexMatch(t, BuildLogin("/forum"), RegexLogin, nil)
	AssertRegexMatch(t, BuildLogout(), RegexLogout, nil)
	AssertRegexMatch(t, BuildProfile(), RegexProfile, nil)
	AssertRegexMatch(t, BuildProfileAvatar(), RegexProfileAvatar, nil)
}

func TestAPI(t *testing.T) {
	AssertRegexMatch(t, BuildAPIContact(), RegexAPIContact, nil)
	AssertRegexMatch(t, BuildAPINewsletter(), RegexAPINewsletter, nil)
}

func TestPublic(t *testing.T) {
	AssertRegexMatch(t, BuildPublic("style.css"), RegexPublic, nil)
	AssertRegexMatch(t, BuildPublic("/js/board.js"), RegexPublic, nil)
}

func AssertRegexMatch(t *testing.T, fullUrl string, regex *regexp.Regexp, paramsToVerify map[string]string) {
	t.Helper()

	parsed, err := url.Parse(fullUrl)
	assert.Nil(t, err, "Full url could not be parsed: %s", fullUrl)

	requestPath := parsed.Path
	if len(requestPath) == 0 {
		requestPath = "/"
	}
	match := regex.FindStringSubmatch(requestPath)
	assert.NotNil(t, match, "Url did not match regex: [%s] vs [%s]", requestPath, regex.String())

	if paramsToVerify != nil {
		subexpNames := regex.SubexpNames()
		for i, paramValue := range match {
			paramName := subexpNames[i]
			expectedValue, ok := paramsToVerify[paramName]
			if ok {
				assert.Equal(t, expectedValue, paramValue, "Param mismatch for [%s]", paramName)
				delete(paramsToVerify, paramName)
			}
		}
		if len(paramsToVerify) > 0 {
			unmatchedParams := make([]string, 0, len(paramsToVerify))
			for paramName := range paramsToVerify {
				unmatchedParams = append(unmatchedParams, paramName)
			}
			assert.Fail(t, "Params not found in regex", "Params: %v", unmatchedParams)
		}
	}
}
