package scadata

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
)

var ErrUsernameTaken = errors.New("username is already taken")

func FetchUser(ctx context.Context, conn db.ConnOrTx, id uuid.UUID) (*models.User, error) {
	user, err := db.QueryOne[models.User](ctx, conn,
		"SELECT $columns FROM sca_user WHERE id = $1",
		id,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, db.NotFound
		}
		return nil, oops.New(err, "failed to fetch user")
	}

	return user, nil
}

func FetchProfile(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID) (*models.Profile, error) {
	profile, err := db.QueryOne[models.Profile](ctx, conn,
		"SELECT $columns FROM profile WHERE id = $1",
		userID,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, db.NotFound
		}
		return nil, oops.New(err, "failed to fetch profile")
	}

	return profile, nil
}

type ProfileUpdate struct {
	Username        string
	FullName        string
	LichessUsername string
}

func UpdateProfile(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID, update ProfileUpdate) error {
	_, err := conn.Exec(ctx,
		`
		UPDATE profile
		SET username = $2, full_name = $3, lichess_username = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		`,
		userID, update.Username, update.FullName, update.LichessUsername,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return oops.New(err, "failed to update profile")
	}

	return nil
}

func UpdateProfileAvatar(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID, avatarUrl string) error {
	_, err := conn.Exec(ctx,
		`
		UPDATE profile
		SET avatar_url = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		`,
		userID, avatarUrl,
	)
	if err != nil {
		return oops.New(err, "failed to update avatar")
	}

	return nil
}
