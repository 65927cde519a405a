package website

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIContact(t *testing.T) {
	router := &Router{}
	routes := RouteBuilder{Router: router}
	routes.POST(regexp.MustCompile("^/api/contact$"), APIContact)

	srv := httptest.NewServer(router)
	defer srv.Close()

	postJson := func(body string) (int, map[string]string) {
		t.Helper()
		res, err := http.Post(srv.URL+"/api/contact", "application/json", strings.NewReader(body))
		if !assert.Nil(t, err) {
			t.FailNow()
		}
		defer res.Body.Close()
		raw, err := io.ReadAll(res.Body)
		assert.Nil(t, err)
		var fields map[string]string
		assert.Nil(t, json.Unmarshal(raw, &fields))
		return res.StatusCode, fields
	}

	t.Run("json body", func(t *testing.T) {
		status, fields := postJson(`{"name":"A","email":"a@b.c","subject":"Hi","message":"Hello there"}`)
		assert.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, fields["message"])
	})

	t.Run("json body with missing fields", func(t *testing.T) {
		status, fields := postJson(`{"name":"A"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "All fields are required.", fields["error"])
	})

	t.Run("malformed json", func(t *testing.T) {
		status, fields := postJson(`{`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, fields["error"])
	})

	t.Run("form body", func(t *testing.T) {
		res, err := http.PostForm(srv.URL+"/api/contact", url.Values{
			"name":    {"A"},
			"email":   {"a@b.c"},
			"subject": {"Hi"},
			"message": {"Hello there"},
		})
		if assert.Nil(t, err) {
			defer res.Body.Close()
			assert.Equal(t, http.StatusOK, res.StatusCode)
		}
	})
}

func TestAPINewsletterValidation(t *testing.T) {
	router := &Router{}
	routes := RouteBuilder{Router: router}
	routes.POST(regexp.MustCompile("^/api/newsletter$"), APINewsletter)

	srv := httptest.NewServer(router)
	defer srv.Close()

	// Addresses without an @ never reach the store, so no database is
	// needed to check the validation path.
	res, err := http.Post(srv.URL+"/api/newsletter", "application/json", strings.NewReader(`{"email":"nope"}`))
	if assert.Nil(t, err) {
		defer res.Body.Close()
		raw, err := io.ReadAll(res.Body)
		assert.Nil(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, string(raw), "valid email")
	}
}
