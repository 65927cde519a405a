package migrations

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smartchessacademy/website/src/migration/types"
)

func init() {
	registerMigration(AddEditorialTables{})
}

type AddEditorialTables struct{}

func (m AddEditorialTables) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2026, 7, 8, 18, 34, 20, 0, time.UTC))
}

func (m AddEditorialTables) Name() string {
	return "AddEditorialTables"
}

func (m AddEditorialTables) Description() string {
	return "Create the article and news tables"
}

func (m AddEditorialTables) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE article (
			id UUID PRIMARY KEY,
			slug VARCHAR(200) NOT NULL,
			title VARCHAR(200) NOT NULL,
			author VARCHAR(150) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			content_json JSONB NOT NULL DEFAULT '[]',
			published_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX article_slug ON article (slug);
		CREATE INDEX article_published_at ON article (published_at DESC);

		CREATE TABLE news_fact (
			id UUID PRIMARY KEY,
			event_date TIMESTAMP WITH TIME ZONE NOT NULL,
			event_time VARCHAR(50) NOT NULL DEFAULT '',
			title VARCHAR(200) NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			location VARCHAR(200) NOT NULL DEFAULT '',
			event_type VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX news_fact_event_date ON news_fact (event_date DESC);
	`)
	return err
}

func (m AddEditorialTables) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE news_fact;
		DROP TABLE article;
	`)
	return err
}
