package scadata

import (
	"context"
	"errors"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
)

// FetchArticles returns published articles, newest first. The body is
// included; article lists are short enough that we don't bother with a
// separate summary query.
func FetchArticles(ctx context.Context, conn db.ConnOrTx) ([]*models.Article, error) {
	articles, err := db.Query[models.Article](ctx, conn,
		`
		SELECT $columns
		FROM article
		WHERE published_at <= CURRENT_TIMESTAMP
		ORDER BY published_at DESC
		`,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch articles")
	}

	return articles, nil
}

func FetchArticleBySlug(ctx context.Context, conn db.ConnOrTx, slug string) (*models.Article, error) {
	article, err := db.QueryOne[models.Article](ctx, conn,
		`
		SELECT $columns
		FROM article
		WHERE slug = $1 AND published_at <= CURRENT_TIMESTAMP
		`,
		slug,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, db.NotFound
		}
		return nil, oops.New(err, "failed to fetch article")
	}

	return article, nil
}
