package migrations

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartchessacademy/website/src/migration/types"
)

func init() {
	registerMigration(InitialAccounts{})
}

type InitialAccounts struct{}

func (m InitialAccounts) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 6, 10, 14, 15, 2, 0, time.UTC))
}

func (m InitialAccounts) Name() string {
	return "InitialAccounts"
}

func (m InitialAccounts) Description() string {
	return "Create the user, session, and profile tables"
}

func (m InitialAccounts) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE sca_user (
			id UUID PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			status INT NOT NULL DEFAULT 1,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_login TIMESTAMP WITH TIME ZONE
		);
		CREATE UNIQUE INDEX sca_user_email ON sca_user (LOWER(email));

		CREATE TABLE session (
			id VARCHAR(40) PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES sca_user (id) ON DELETE CASCADE,
			csrf_token VARCHAR(40) NOT NULL,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL
		);

		CREATE TABLE profile (
			id UUID PRIMARY KEY REFERENCES sca_user (id) ON DELETE CASCADE,
			username VARCHAR(150) NOT NULL,
			full_name VARCHAR(255) NOT NULL DEFAULT '',
			lichess_username VARCHAR(50) NOT NULL DEFAULT '',
			avatar_url VARCHAR(512) NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX profile_username ON profile (LOWER(username));
	`)
	return err
}

func (m InitialAccounts) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE profile;
		DROP TABLE session;
		DROP TABLE sca_user;
	`)
	return err
}
