package db

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCompileQuery(t *testing.T) {
	t.Run("simple struct", func(t *testing.T) {
		type dest struct {
			ID    uuid.UUID `db:"id"`
			Title string    `db:"title"`
		}
		compiled := compileQuery("SELECT $columns FROM forum_post", reflect.TypeOf(dest{}))
		assert.Equal(t, "SELECT id, title FROM forum_post", compiled.query)
		assert.Equal(t, []fieldPath{{0}, {1}}, compiled.fieldPaths)
	})

	t.Run("with prefix", func(t *testing.T) {
		type dest struct {
			ID uuid.UUID `db:"id"`
		}
		compiled := compileQuery("SELECT $columns{post} FROM forum_post AS post", reflect.TypeOf(dest{}))
		assert.Equal(t, "SELECT post.id FROM forum_post AS post", compiled.query)
	})

	t.Run("nested structs get prefixed", func(t *testing.T) {
		type inner struct {
			Name string `db:"name"`
		}
		type dest struct {
			ID     int    `db:"id"`
			Author *inner `db:"author"`
		}
		compiled := compileQuery("SELECT $columns FROM whatever", reflect.TypeOf(dest{}))
		assert.Equal(t, "SELECT id, author.name FROM whatever", compiled.query)
		assert.Equal(t, []fieldPath{{0}, {1, 0}}, compiled.fieldPaths)
	})

	t.Run("untagged fields are skipped", func(t *testing.T) {
		type dest struct {
			ID      int `db:"id"`
			Ignored string
		}
		compiled := compileQuery("SELECT $columns FROM whatever", reflect.TypeOf(dest{}))
		assert.Equal(t, "SELECT id FROM whatever", compiled.query)
	})

	t.Run("no placeholder passes through", func(t *testing.T) {
		compiled := compileQuery("SELECT id FROM forum_post", reflect.TypeOf(0))
		assert.Equal(t, "SELECT id FROM forum_post", compiled.query)
	})
}

func TestTypeIsQueryable(t *testing.T) {
	assert.True(t, typeIsQueryable(reflect.TypeOf("")))
	assert.True(t, typeIsQueryable(reflect.TypeOf(0)))
	assert.True(t, typeIsQueryable(reflect.TypeOf(time.Time{})))
	assert.True(t, typeIsQueryable(reflect.TypeOf(uuid.UUID{})))
	assert.False(t, typeIsQueryable(reflect.TypeOf(struct{ A int }{})))
}

func TestQueryBuilder(t *testing.T) {
	var qb QueryBuilder
	qb.Add("SELECT stuff FROM thing")
	qb.Add("WHERE id = $?", 3)
	qb.Add("AND (deleted = $? OR title = $?)", true, "yes")

	assert.Equal(t, "SELECT stuff FROM thing\nWHERE id = $1\nAND (deleted = $2 OR title = $3)\n", qb.String())
	assert.Equal(t, []any{3, true, "yes"}, qb.Args())
}

func TestQueryBuilderPanics(t *testing.T) {
	assert.Panics(t, func() {
		var qb QueryBuilder
		qb.Add("WHERE id = $?")
	})
}
