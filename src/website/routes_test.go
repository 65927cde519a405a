package website

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	router := &Router{}
	routes := RouteBuilder{Router: router}

	routes.GET(regexp.MustCompile(`^/posts/(?P<id>[^/]+)$`), func(c *RequestContext) ResponseData {
		var res ResponseData
		res.Write([]byte("post " + c.PathParams["id"]))
		return res
	})

	adminRoutes := routes.Group(regexp.MustCompile(`^/admin`))
	adminRoutes.GET(regexp.MustCompile(`^/stats$`), func(c *RequestContext) ResponseData {
		var res ResponseData
		res.Write([]byte("stats"))
		return res
	})

	routes.POST(regexp.MustCompile(`^/submit$`), func(c *RequestContext) ResponseData {
		var res ResponseData
		res.Write([]byte("submitted"))
		return res
	})

	routes.AnyMethod(regexp.MustCompile("^"), func(c *RequestContext) ResponseData {
		var res ResponseData
		res.StatusCode = http.StatusNotFound
		res.Write([]byte("not found"))
		return res
	})

	srv := httptest.NewServer(router)
	defer srv.Close()

	get := func(path string) (int, string) {
		t.Helper()
		res, err := http.Get(srv.URL + path)
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		assert.Nil(t, err)
		return res.StatusCode, string(body)
	}

	t.Run("path params", func(t *testing.T) {
		status, body := get("/posts/abc123")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "post abc123", body)
	})

	t.Run("group prefixes", func(t *testing.T) {
		status, body := get("/admin/stats")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "stats", body)
	})

	t.Run("trailing slashes are ignored", func(t *testing.T) {
		status, body := get("/admin/stats/")
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "stats", body)
	})

	t.Run("method mismatch falls through", func(t *testing.T) {
		status, _ := get("/submit")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown paths hit the wildcard", func(t *testing.T) {
		status, body := get("/nope/nope/nope")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not found", body)
	})

	t.Run("HEAD routes like GET but sends no body", func(t *testing.T) {
		res, err := http.Head(srv.URL + "/posts/xyz")
		if assert.Nil(t, err) {
			defer res.Body.Close()
			body, err := io.ReadAll(res.Body)
			assert.Nil(t, err)
			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "", string(body))
			assert.Equal(t, "8", res.Header.Get("Content-Length"))
		}
	})
}

func TestRouteRegexesMustAnchor(t *testing.T) {
	routes := RouteBuilder{Router: &Router{}}
	assert.Panics(t, func() {
		routes.GET(regexp.MustCompile(`/unanchored$`), func(c *RequestContext) ResponseData {
			return ResponseData{}
		})
	})
}

func TestLogContextErrors(t *testing.T) {
	err1 := errors.New("test error 1")
	err2 := errors.New("test error 2")

	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Print("sanity check")

	assert.Contains(t, buf.String(), "sanity check")

	router := &Router{}
	routes := RouteBuilder{
		Router: router,
		Middlewares: []Middleware{
			func(h Handler) Handler {
				return func(c *RequestContext) ResponseData {
					c.Logger = &logger
					return logContextErrorsMiddleware(h)(c)
				}
			},
		},
	}

	routes.GET(regexp.MustCompile("^/test$"), func(c *RequestContext) ResponseData {
		return c.ErrorResponse(http.StatusInternalServerError, err1, err2)
	})

	srv := httptest.NewServer(router)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/test")
	if assert.Nil(t, err) {
		defer res.Body.Close()

		t.Logf("Log contents: %s", buf.String())

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

		assert.Contains(t, buf.String(), err1.Error())
		assert.Contains(t, buf.String(), err2.Error())
	}
}
