package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/jobs"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/utils"
)

const SessionCookieName = "SCASession"

// CSRFFieldName is the form field that must carry the session's CSRF
// token on every mutating request.
const CSRFFieldName = "csrf_token"

const sessionDuration = time.Hour * 24 * 14

func makeToken() string {
	tokenBytes := make([]byte, 40)
	_, err := io.ReadFull(rand.Reader, tokenBytes)
	if err != nil {
		panic(err)
	}

	return base64.StdEncoding.EncodeToString(tokenBytes)[:40]
}

var ErrNoSession = errors.New("no session found")

func GetSession(ctx context.Context, conn db.ConnOrTx, id string) (*models.Session, error) {
	sess, err := db.QueryOne[models.Session](ctx, conn,
		"SELECT $columns FROM session WHERE id = $1 AND expires_at > CURRENT_TIMESTAMP",
		id,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, ErrNoSession
		}
		return nil, oops.New(err, "failed to get session")
	}

	return sess, nil
}

func CreateSession(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID) (*models.Session, error) {
	session := models.Session{
		ID:        makeToken(),
		UserID:    userID,
		CSRFToken: makeToken(),
		ExpiresAt: time.Now().Add(sessionDuration),
	}

	_, err := conn.Exec(ctx,
		"INSERT INTO session (id, user_id, csrf_token, expires_at) VALUES ($1, $2, $3, $4)",
		session.ID, session.UserID, session.CSRFToken, session.ExpiresAt,
	)
	if err != nil {
		return nil, oops.New(err, "failed to persist session")
	}

	return &session, nil
}

// Deletes a session by id. If no session with that id exists, no
// error is returned.
func DeleteSession(ctx context.Context, conn db.ConnOrTx, id string) error {
	_, err := conn.Exec(ctx, "DELETE FROM session WHERE id = $1", id)
	if err != nil {
		return oops.New(err, "failed to delete session")
	}

	return nil
}

// DeleteSessionsForUser logs the user out everywhere, e.g. after a
// password change.
func DeleteSessionsForUser(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID) error {
	_, err := conn.Exec(ctx, "DELETE FROM session WHERE user_id = $1", userID)
	if err != nil {
		return oops.New(err, "failed to delete sessions for user")
	}

	return nil
}

func NewSessionCookie(session *models.Session) *http.Cookie {
	return &http.Cookie{
		Name:  SessionCookieName,
		Value: session.ID,

		Path:    "/",
		Domain:  config.Config.Auth.CookieDomain,
		Expires: session.ExpiresAt,

		Secure:   config.Config.Auth.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

var DeleteSessionCookie = &http.Cookie{
	Name:   SessionCookieName,
	Path:   "/",
	Domain: config.Config.Auth.CookieDomain,
	MaxAge: -1,
}

func DeleteExpiredSessions(ctx context.Context, conn db.ConnOrTx) (int64, error) {
	tag, err := conn.Exec(ctx, "DELETE FROM session WHERE expires_at <= CURRENT_TIMESTAMP")
	if err != nil {
		return 0, oops.New(err, "failed to delete expired sessions")
	}

	return tag.RowsAffected(), nil
}

func PeriodicallyDeleteExpiredSessions(conn db.ConnOrTx) *jobs.Job {
	job := jobs.New("periodically delete expired sessions")
	go func() {
		defer job.Finish()

		t := time.NewTicker(1 * time.Minute)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				err := func() (err error) {
					defer utils.RecoverPanicAsError(&err)

					n, err := DeleteExpiredSessions(job.Ctx, conn)
					if err == nil {
						if n > 0 {
							job.Logger.Info().Int64("num deleted sessions", n).Msg("Deleted expired sessions")
						}
					} else {
						job.Logger.Error().Err(err).Msg("Failed to delete expired sessions")
					}
					return nil
				}()
				if err != nil {
					job.Logger.Error().Err(err).Msg("Panicked while deleting expired sessions")
				}
			case <-job.Canceled():
				return
			}
		}
	}()
	return job
}
