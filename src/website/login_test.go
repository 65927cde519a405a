package website

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/models"
)

func TestUsernameFromEmail(t *testing.T) {
	assert.Equal(t, "magnus", usernameFromEmail("magnus@example.com"))
	assert.Equal(t, "anna.cramling", usernameFromEmail("anna.cramling@chess.club"))
	assert.Equal(t, "tag+filter", usernameFromEmail("tag+filter@example.com"))
}

func TestCsrfMiddleware(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := &Router{}
	routes := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			func(h Handler) Handler {
				return func(c *RequestContext) ResponseData {
					c.Logger = &logger
					c.CurrentUser = &models.User{ID: uuid.New(), Email: "coach@example.com"}
					c.CurrentSession = &models.Session{CSRFToken: "goodtoken"}
					return h(c)
				}
			},
			csrfMiddleware,
		},
	}

	handlerRan := false
	routes.POST(regexp.MustCompile("^/submit$"), func(c *RequestContext) ResponseData {
		handlerRan = true
		return ResponseData{}
	})

	srv := httptest.NewServer(router)
	defer srv.Close()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	t.Run("mismatched token logs out", func(t *testing.T) {
		res, err := client.PostForm(srv.URL+"/submit", url.Values{auth.CSRFFieldName: {"wrong"}})
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, "/", res.Header.Get("Location"))
			assert.False(t, handlerRan)
			assert.Contains(t, buf.String(), "coach@example.com")
		}
	})

	t.Run("matching token passes through", func(t *testing.T) {
		res, err := client.PostForm(srv.URL+"/submit", url.Values{auth.CSRFFieldName: {"goodtoken"}})
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.True(t, handlerRan)
		}
	})
}
