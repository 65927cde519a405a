package website

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/logging"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
)

func loadCommonData(h Handler) Handler {
	return func(c *RequestContext) ResponseData {
		sessionCookie, err := c.Req.Cookie(auth.SessionCookieName)
		if err == nil {
			user, session, err := getCurrentUserAndSession(c, sessionCookie.Value)
			if err != nil {
				return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to get current user"))
			}

			c.CurrentUser = user
			c.CurrentSession = session
			if user != nil {
				profile, err := fetchCurrentProfile(c, user.ID)
				if err != nil {
					return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to get current profile"))
				}
				c.CurrentProfile = profile
			}
		}
		// http.ErrNoCookie is the only error Cookie ever returns, so no further handling to do here.

		return h(c)
	}
}

// Given a session id, fetches user data from the database. Will return nil if
// the user cannot be found, and will only return an error if it's serious.
func getCurrentUserAndSession(c *RequestContext, sessionId string) (*models.User, *models.Session, error) {
	session, err := auth.GetSession(c, c.Conn, sessionId)
	if err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			return nil, nil, nil
		} else {
			return nil, nil, oops.New(err, "failed to get current session")
		}
	}

	user, err := scadata.FetchUser(c, c.Conn, session.UserID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			logging.Debug().Stringer("userId", session.UserID).Msg("returning no current user for this request because the user for the session couldn't be found")
			return nil, nil, nil // user was deleted or something
		} else {
			return nil, nil, oops.New(err, "failed to get user for session")
		}
	}

	return user, session, nil
}

func fetchCurrentProfile(c *RequestContext, userID uuid.UUID) (*models.Profile, error) {
	profile, err := scadata.FetchProfile(c, c.Conn, userID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			// Profiles are created alongside users, but tolerate a missing
			// row instead of locking the user out of the whole site.
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}
