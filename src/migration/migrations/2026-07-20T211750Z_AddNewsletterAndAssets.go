package migrations

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartchessacademy/website/src/migration/types"
)

func init() {
	registerMigration(AddNewsletterAndAssets{})
}

type AddNewsletterAndAssets struct{}

func (m AddNewsletterAndAssets) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 7, 20, 21, 17, 50, 0, time.UTC))
}

func (m AddNewsletterAndAssets) Name() string {
	return "AddNewsletterAndAssets"
}

func (m AddNewsletterAndAssets) Description() string {
	return "Create the newsletter subscriber and asset tables"
}

func (m AddNewsletterAndAssets) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE newsletter_subscriber (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX newsletter_subscriber_email ON newsletter_subscriber (LOWER(email));

		CREATE TABLE asset (
			id UUID PRIMARY KEY,
			s3_key VARCHAR(2000) NOT NULL,
			filename VARCHAR(2000) NOT NULL,
			size INT NOT NULL,
			mime_type VARCHAR(255) NOT NULL,
			sha1sum VARCHAR(40) NOT NULL,
			uploader_id UUID REFERENCES sca_user (id) ON DELETE SET NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func (m AddNewsletterAndAssets) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE asset;
		DROP TABLE newsletter_subscriber;
	`)
	return err
}
