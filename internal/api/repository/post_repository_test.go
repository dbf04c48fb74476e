package repository

import (
	"context"
	"testing"

	"mliou521/Inkwell/internal/api/models"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (*sqlx.DB, PostRepository, *models.User) {
	t.Helper()

	pool := newTestDB(t)
	author, err := NewUserRepository(pool).Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	return pool, NewPostRepository(pool), author
}

func TestPostRepository_CreateAndFind(t *testing.T) {
	_, posts, author := newPostFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, "Hello", "World", author.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Content)
	assert.True(t, post.CreatedAt.Equal(post.UpdatedAt))

	found, err := posts.Find(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post, found)
}

func TestPostRepository_FindNotFound(t *testing.T) {
	_, posts, _ := newPostFixture(t)

	_, err := posts.Find(context.Background(), "42")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Post with id 42 not found", err.Error())
}

func TestPostRepository_AllNewestFirst(t *testing.T) {
	_, posts, author := newPostFixture(t)
	ctx := context.Background()

	first, err := posts.Create(ctx, "first", "a", author.ID)
	require.NoError(t, err)
	second, err := posts.Create(ctx, "second", "b", author.ID)
	require.NoError(t, err)
	third, err := posts.Create(ctx, "third", "c", author.ID)
	require.NoError(t, err)

	all, err := posts.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt))
	}
}

func TestPostRepository_AllBreaksTimestampTiesByInsertionOrder(t *testing.T) {
	pool, posts, author := newPostFixture(t)
	ctx := context.Background()

	// Seed two rows with identical timestamps.
	stamp := "2026-08-01T10:00:00Z"
	for _, title := range []string{"older insert", "newer insert"} {
		_, err := pool.ExecContext(ctx,
			`INSERT INTO posts (author_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			author.ID, title, "body", stamp, stamp)
		require.NoError(t, err)
	}

	all, err := posts.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "newer insert", all[0].Title)
	assert.Equal(t, "older insert", all[1].Title)
}

func TestPostRepository_AllEmpty(t *testing.T) {
	_, posts, _ := newPostFixture(t)

	all, err := posts.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestPostRepository_Update(t *testing.T) {
	_, posts, author := newPostFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, "Hello", "World", author.ID)
	require.NoError(t, err)

	title := "Hello again"
	updated, err := posts.Update(ctx, post.ID, models.PostPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Hello again", updated.Title)
	assert.Equal(t, "World", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(post.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestPostRepository_UpdateNotFound(t *testing.T) {
	_, posts, _ := newPostFixture(t)

	title := "nope"
	_, err := posts.Update(context.Background(), "42", models.PostPatch{Title: &title})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPostRepository_DeleteIsIdempotent(t *testing.T) {
	_, posts, author := newPostFixture(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, "Hello", "World", author.ID)
	require.NoError(t, err)

	require.NoError(t, posts.Delete(ctx, post.ID))

	_, err = posts.Find(ctx, post.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	// A second delete of the same id still succeeds.
	assert.NoError(t, posts.Delete(ctx, post.ID))
	assert.NoError(t, posts.Delete(ctx, "999"))
}
