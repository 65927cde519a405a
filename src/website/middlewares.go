package website

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/logging"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/utils"
)

func panicCatcherMiddleware(h Handler) Handler {
	return func(c *RequestContext) (res ResponseData) {
		defer func() {
			if recovered := recover(); recovered != nil {
				maybeError, ok := recovered.(*error)
				var err error
				if ok {
					err = *maybeError
				} else {
					err = oops.New(nil, fmt.Sprintf("Recovered from panic with value: %v", recovered))
				}
				res = c.ErrorResponse(http.StatusInternalServerError, err)
			}
		}()

		return h(c)
	}
}

func trackRequestMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		start := time.Now()
		res := h(c)
		logging.Info().
			Str("method", c.Req.Method).
			Str("path", c.Req.URL.Path).
			Int("status", utils.Max(res.StatusCode, http.StatusOK)).
			Dur("duration", time.Since(start)).
			Msg("served request")
		return res
	}
}

func needsAuth(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		if c.CurrentUser == nil {
			return c.Redirect(siteurl.BuildLogin(c.FullUrl()), http.StatusSeeOther)
		}

		return h(c)
	}
}

func csrfMiddleware(h Handler) Handler {
	// CSRF mitigation actions per the OWASP cheat sheet:
	// https://cheatsheetseries.owasp.org/cheatsheets/Cross-Site_Request_Forgery_Prevention_Cheat_Sheet.html
	return func(c *RequestContext) ResponseData {
		c.Req.ParseMultipartForm(10 * 1024 * 1024)
		csrfToken := c.Req.Form.Get(auth.CSRFFieldName)
		if csrfToken != c.CurrentSession.CSRFToken {
			c.Logger.Warn().Str("email", c.CurrentUser.Email).Msg("user failed CSRF validation - potential attack?")

			res := c.Redirect("/", http.StatusSeeOther)
			logoutUser(c, &res)

			return res
		}

		return h(c)
	}
}

func securityTimerMiddleware(duration time.Duration, h Handler) Handler {
	// Will make sure that the request takes at least `duration` to finish,
	// plus up to 10% extra.
	return func(c *RequestContext) ResponseData {
		additionalDuration := time.Duration(rand.Int63n(utils.Max(1, int64(duration)/10)))
		timer := time.NewTimer(duration + additionalDuration)
		res := h(c)
		select {
		case <-c.Done():
		case <-timer.C:
		}
		return res
	}
}

func logContextErrors(c *RequestContext, errs ...error) {
	for _, err := range errs {
		c.Logger.Error().Timestamp().Stack().Str("Requested", c.FullUrl()).Err(err).Msg("error occurred during request")
	}
}

func logContextErrorsMiddleware(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		res := h(c)
		logContextErrors(c, res.Errors...)
		return res
	}
}
