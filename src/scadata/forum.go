package scadata

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
)

const (
	PostTitleMinLength   = 5
	PostTitleMaxLength   = 200
	PostContentMinLength = 20
	PostContentMaxLength = 10000
	CommentMaxLength     = 10000
)

// ValidateForumPost returns user-facing problems with a prospective
// post, empty when the post is acceptable. Nothing is stored unless
// this comes back empty.
func ValidateForumPost(title, content string) []string {
	var problems []string
	if len(title) < PostTitleMinLength {
		problems = append(problems, fmt.Sprintf("Title must be at least %d characters.", PostTitleMinLength))
	}
	if len(title) > PostTitleMaxLength {
		problems = append(problems, fmt.Sprintf("Title must be no more than %d characters.", PostTitleMaxLength))
	}
	if len(content) < PostContentMinLength {
		problems = append(problems, fmt.Sprintf("Content must be at least %d characters.", PostContentMinLength))
	}
	if len(content) > PostContentMaxLength {
		problems = append(problems, fmt.Sprintf("Content must be no more than %d characters.", PostContentMaxLength))
	}
	return problems
}

func ValidateForumComment(content string) []string {
	var problems []string
	if len(content) == 0 {
		problems = append(problems, "Comment cannot be empty.")
	}
	if len(content) > CommentMaxLength {
		problems = append(problems, fmt.Sprintf("Comment must be no more than %d characters.", CommentMaxLength))
	}
	return problems
}

type ForumPostAndAuthor struct {
	ForumPost models.ForumPost `db:"post"`
	Author    *models.Profile  `db:"author"`
}

type ForumPostListItem struct {
	ForumPostAndAuthor
	NumComments int
}

type ForumCommentAndAuthor struct {
	ForumComment models.ForumComment `db:"comment"`
	Author       *models.Profile     `db:"author"`
}

// FetchForumPosts returns one page of posts, newest first, with their
// authors and comment counts. Author profiles come back in the same
// query; no per-post follow-up queries.
func FetchForumPosts(ctx context.Context, conn db.ConnOrTx, page, perPage int) ([]ForumPostListItem, int, error) {
	posts, err := db.Query[ForumPostAndAuthor](ctx, conn,
		`
		SELECT $columns
		FROM forum_post AS post
		LEFT JOIN profile AS author ON author.id = post.user_id
		ORDER BY post.created_at DESC
		LIMIT $1 OFFSET $2
		`,
		perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, 0, oops.New(err, "failed to fetch forum posts")
	}

	total, err := db.QueryOneScalar[int](ctx, conn, "SELECT COUNT(*) FROM forum_post")
	if err != nil {
		return nil, 0, oops.New(err, "failed to count forum posts")
	}

	postIDs := make([]uuid.UUID, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ForumPost.ID)
	}

	type commentCount struct {
		PostID uuid.UUID `db:"post_id"`
		Count  int       `db:"count"`
	}
	counts, err := db.Query[commentCount](ctx, conn,
		`
		SELECT $columns
		FROM (
			SELECT post_id, COUNT(*) AS count
			FROM forum_comment
			WHERE post_id = ANY($1)
			GROUP BY post_id
		) AS comment_counts
		`,
		postIDs,
	)
	if err != nil {
		return nil, 0, oops.New(err, "failed to count forum comments")
	}
	countsByPost := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		countsByPost[c.PostID] = c.Count
	}

	items := make([]ForumPostListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, ForumPostListItem{
			ForumPostAndAuthor: *post,
			NumComments:        countsByPost[post.ForumPost.ID],
		})
	}

	return items, total, nil
}

func FetchForumPost(ctx context.Context, conn db.ConnOrTx, id uuid.UUID) (*ForumPostAndAuthor, error) {
	post, err := db.QueryOne[ForumPostAndAuthor](ctx, conn,
		`
		SELECT $columns
		FROM forum_post AS post
		LEFT JOIN profile AS author ON author.id = post.user_id
		WHERE post.id = $1
		`,
		id,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, db.NotFound
		}
		return nil, oops.New(err, "failed to fetch forum post")
	}

	return post, nil
}

// FetchForumComments returns a post's comments oldest first, authors
// included.
func FetchForumComments(ctx context.Context, conn db.ConnOrTx, postID uuid.UUID) ([]*ForumCommentAndAuthor, error) {
	comments, err := db.Query[ForumCommentAndAuthor](ctx, conn,
		`
		SELECT $columns
		FROM forum_comment AS comment
		LEFT JOIN profile AS author ON author.id = comment.user_id
		WHERE comment.post_id = $1
		ORDER BY comment.created_at ASC
		`,
		postID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to fetch forum comments")
	}

	return comments, nil
}

func CreateForumPost(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID, title, content string) (*models.ForumPost, error) {
	post, err := db.QueryOne[models.ForumPost](ctx, conn,
		`
		INSERT INTO forum_post (id, user_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING $columns
		`,
		uuid.New(), userID, title, content,
	)
	if err != nil {
		return nil, oops.New(err, "failed to create forum post")
	}

	return post, nil
}

func UpdateForumPost(ctx context.Context, conn db.ConnOrTx, id uuid.UUID, title, content string) error {
	_, err := conn.Exec(ctx,
		`
		UPDATE forum_post
		SET title = $2, content = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		`,
		id, title, content,
	)
	if err != nil {
		return oops.New(err, "failed to update forum post")
	}

	return nil
}

// DeleteForumPost removes the post only. Its comments stay in the
// table and simply stop being reachable from any page.
func DeleteForumPost(ctx context.Context, conn db.ConnOrTx, id uuid.UUID) error {
	_, err := conn.Exec(ctx, "DELETE FROM forum_post WHERE id = $1", id)
	if err != nil {
		return oops.New(err, "failed to delete forum post")
	}

	return nil
}

func FetchForumComment(ctx context.Context, conn db.ConnOrTx, id uuid.UUID) (*models.ForumComment, error) {
	comment, err := db.QueryOne[models.ForumComment](ctx, conn,
		"SELECT $columns FROM forum_comment WHERE id = $1",
		id,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, db.NotFound
		}
		return nil, oops.New(err, "failed to fetch forum comment")
	}

	return comment, nil
}

func CreateForumComment(ctx context.Context, conn db.ConnOrTx, postID, userID uuid.UUID, content string) (*models.ForumComment, error) {
	comment, err := db.QueryOne[models.ForumComment](ctx, conn,
		`
		INSERT INTO forum_comment (id, post_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING $columns
		`,
		uuid.New(), postID, userID, content,
	)
	if err != nil {
		return nil, oops.New(err, "failed to create forum comment")
	}

	return comment, nil
}

func UpdateForumComment(ctx context.Context, conn db.ConnOrTx, id uuid.UUID, content string) error {
	_, err := conn.Exec(ctx,
		`
		UPDATE forum_comment
		SET content = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		`,
		id, content,
	)
	if err != nil {
		return oops.New(err, "failed to update forum comment")
	}

	return nil
}

func DeleteForumComment(ctx context.Context, conn db.ConnOrTx, id uuid.UUID) error {
	_, err := conn.Exec(ctx, "DELETE FROM forum_comment WHERE id = $1", id)
	if err != nil {
		return oops.New(err, "failed to delete forum comment")
	}

	return nil
}
