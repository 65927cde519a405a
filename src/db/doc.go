/*
This package contains lowish-level APIs for making queries to our Postgres
database. It streamlines the process of mapping query results to Go types,
while allowing you to write arbitrary SQL queries.

The primary functions are Query and QueryIterator. See the function
documentation for details.

# Query syntax

Arguments are provided using placeholders like $1, $2, etc. All arguments will
be safely escaped and mapped from their Go type to the correct Postgres type.
(This is a direct proxy to pgx.)

	ids, err := db.QueryScalar[string](ctx, conn,
		`SELECT id FROM forum_post WHERE user_id = $1`,
		userID,
	)

To query multiple columns at once, use a struct type with `db:"column_name"`
tags and the special $columns placeholder:

	type ForumPost struct {
		ID    uuid.UUID `db:"id"`
		Title string    `db:"title"`
	}
	posts, err := db.Query[ForumPost](ctx, conn, `SELECT $columns FROM forum_post`)
	// Resulting query:
	// SELECT id, title FROM forum_post

When a table-name prefix is required to disambiguate columns, e.g. in a JOIN,
include the prefix in the placeholder like $columns{prefix}:

	comments, err := db.Query[ForumComment](ctx, conn, `
		SELECT $columns{c}
		FROM forum_comment AS c
		JOIN forum_post AS p ON p.id = c.post_id
	`)

Struct fields may themselves be tagged structs, in which case the tag acts as
a table prefix for all of that struct's columns. This makes it easy to query
a row and its related rows in one go:

	type postAndAuthor struct {
		Post   models.ForumPost `db:"post"`
		Author *models.Profile  `db:"author"`
	}

If you want to use a slice in your query, use Postgres arrays instead of IN:

	`WHERE user_id = ANY($1)`
*/
package db
