package website

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

type loginPageData struct {
	templates.BaseData
	SubmitUrl     string
	RedirectValue string
	EmailValue    string
	RegisterUrl   string
}

func LoginPage(c *RequestContext) ResponseData {
	if c.CurrentUser != nil {
		return c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	}

	var res ResponseData
	res.MustWriteTemplate("login.html", loginPageData{
		BaseData:      getBaseData(c, "Log in"),
		SubmitUrl:     siteurl.BuildLogin(""),
		RedirectValue: c.URL().Query().Get("redirect"),
		RegisterUrl:   siteurl.BuildRegister(),
	})
	return res
}

func LoginSubmit(c *RequestContext) ResponseData {
	if c.CurrentUser != nil {
		return c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	}

	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}
	email := strings.TrimSpace(form.Get("email"))
	password := form.Get("password")
	redirect := form.Get("redirect")

	showFailure := func(message string) ResponseData {
		data := loginPageData{
			BaseData:      getBaseData(c, "Log in"),
			SubmitUrl:     siteurl.BuildLogin(""),
			RedirectValue: redirect,
			EmailValue:    email,
			RegisterUrl:   siteurl.BuildRegister(),
		}
		data.AddImmediateNotice("failure", message)
		var res ResponseData
		res.StatusCode = http.StatusUnauthorized
		res.MustWriteTemplate("login.html", data)
		return res
	}

	user, err := auth.ValidateEmailAndPassword(c, c.Conn, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrUserDoesNotExist) {
			return showFailure("Incorrect email or password.")
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to validate credentials"))
	}

	if !user.IsActive() {
		return showFailure("You must confirm your email address before logging in.")
	}

	res := c.Redirect(sanitizeRedirect(redirect), http.StatusSeeOther)
	err = loginUser(c, user, &res)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}
	return res
}

func Logout(c *RequestContext) ResponseData {
	res := c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	logoutUser(c, &res)
	return res
}

func RegisterPage(c *RequestContext) ResponseData {
	if c.CurrentUser != nil {
		return c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	}

	var res ResponseData
	res.MustWriteTemplate("register.html", struct {
		templates.BaseData
		SubmitUrl     string
		EmailValue    string
		UsernameValue string
	}{
		BaseData:  getBaseData(c, "Register"),
		SubmitUrl: siteurl.BuildRegister(),
	})
	return res
}

func RegisterSubmit(c *RequestContext) ResponseData {
	if c.CurrentUser != nil {
		return c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	}

	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}
	email := strings.TrimSpace(form.Get("email"))
	username := strings.TrimSpace(form.Get("username"))
	password := form.Get("password")

	showFailure := func(message string) ResponseData {
		data := struct {
			templates.BaseData
			SubmitUrl     string
			EmailValue    string
			UsernameValue string
		}{
			BaseData:      getBaseData(c, "Register"),
			SubmitUrl:     siteurl.BuildRegister(),
			EmailValue:    email,
			UsernameValue: username,
		}
		data.AddImmediateNotice("failure", message)
		var res ResponseData
		res.StatusCode = http.StatusBadRequest
		res.MustWriteTemplate("register.html", data)
		return res
	}

	if !strings.Contains(email, "@") {
		return showFailure("Please enter a valid email address.")
	}
	if len(password) < auth.MinPasswordLength {
		return showFailure(fmt.Sprintf("Password must be at least %d characters.", auth.MinPasswordLength))
	}
	if username == "" {
		username = usernameFromEmail(email)
	}

	status := models.UserStatusConfirmed
	if config.Config.Auth.RequireEmailConfirmation {
		status = models.UserStatusInactive
	}

	user, err := auth.CreateUser(c, c.Conn, email, username, password, status)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return showFailure("That email address is already registered.")
		}
		if errors.Is(err, auth.ErrUsernameTaken) {
			return showFailure("That username is already taken.")
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to register user"))
	}

	if config.Config.Auth.RequireEmailConfirmation {
		res := c.Redirect(siteurl.BuildLogin(""), http.StatusSeeOther)
		res.AddFutureNotice("success", "Account created. Check your email to confirm your address before logging in.")
		return res
	}

	res := c.Redirect(siteurl.BuildHomepage(), http.StatusSeeOther)
	err = loginUser(c, user, &res)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}
	res.AddFutureNotice("success", "Welcome to the academy!")
	return res
}

func loginUser(c *RequestContext, user *models.User, res *ResponseData) error {
	session, err := auth.CreateSession(c, c.Conn, user.ID)
	if err != nil {
		return oops.New(err, "failed to create session")
	}
	err = auth.TouchLastLogin(c, c.Conn, user.ID)
	if err != nil {
		c.Logger.Warn().Err(err).Msg("failed to update last login")
	}

	res.SetCookie(auth.NewSessionCookie(session))
	return nil
}

// Username is optional at sign-up; the part of the email before the @
// serves as the default.
func usernameFromEmail(email string) string {
	return email[:strings.Index(email, "@")]
}

func logoutUser(c *RequestContext, res *ResponseData) {
	sessionCookie, err := c.Req.Cookie(auth.SessionCookieName)
	if err == nil {
		err := auth.DeleteSession(c, c.Conn, sessionCookie.Value)
		if err != nil {
			c.Logger.Error().Err(err).Msg("failed to delete session on logout")
		}
	}

	res.SetCookie(auth.DeleteSessionCookie)
}

// Only same-site redirect targets are honored; everything else falls
// back to the homepage.
func sanitizeRedirect(redirect string) string {
	if redirect == "" {
		return siteurl.BuildHomepage()
	}
	parsed, err := url.Parse(redirect)
	if err != nil {
		return siteurl.BuildHomepage()
	}
	if parsed.Host != "" {
		base, err := url.Parse(config.Config.BaseUrl)
		if err != nil || parsed.Host != base.Host {
			return siteurl.BuildHomepage()
		}
	}
	return redirect
}
