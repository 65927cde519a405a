package migrations

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartchessacademy/website/src/migration/types"
)

func init() {
	registerMigration(AddForumTables{})
}

type AddForumTables struct{}

func (m AddForumTables) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 6, 24, 9, 53, 11, 0, time.UTC))
}

func (m AddForumTables) Name() string {
	return "AddForumTables"
}

func (m AddForumTables) Description() string {
	return "Create the forum post and comment tables"
}

func (m AddForumTables) Up(ctx context.Context, tx pgx.Tx) error {
	// user_id goes NULL when an account is deleted; the content stays
	// and renders as Anonymous.
	_, err := tx.Exec(ctx, `
		CREATE TABLE forum_post (
			id UUID PRIMARY KEY,
			user_id UUID REFERENCES sca_user (id) ON DELETE SET NULL,
			title VARCHAR(200) NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX forum_post_created_at ON forum_post (created_at DESC);

		CREATE TABLE forum_comment (
			id UUID PRIMARY KEY,
			post_id UUID NOT NULL,
			user_id UUID REFERENCES sca_user (id) ON DELETE SET NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX forum_comment_post_id ON forum_comment (post_id);
	`)
	return err
}

func (m AddForumTables) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE forum_comment;
		DROP TABLE forum_post;
	`)
	return err
}
