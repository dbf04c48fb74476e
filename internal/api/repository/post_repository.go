package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mliou521/Inkwell/internal/api/models"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=post_repository.go -destination=mocks/post_repository.go -package=mocks

// timeLayout keeps a fixed-width fraction so TEXT timestamps sort
// lexicographically. RFC3339Nano would drop trailing zeros and break
// ORDER BY on the column.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// PostRepository defines the interface for post data operations. It carries
// no authorization logic; ownership decisions belong to callers.
type PostRepository interface {
	// Create inserts a post with createdAt == updatedAt.
	Create(ctx context.Context, title, content, authorID string) (*models.Post, error)
	// Find returns the post or a *NotFoundError.
	Find(ctx context.Context, id string) (*models.Post, error)
	// All returns every post, newest first. Equal timestamps fall back to
	// insertion order.
	All(ctx context.Context) ([]models.Post, error)
	// Update merges the supplied fields over the current row, bumps
	// updatedAt, and returns the re-read post.
	Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	// Delete removes the row by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

type postRow struct {
	ID        int64  `db:"id"`
	AuthorID  int64  `db:"author_id"`
	Title     string `db:"title"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r postRow) toModel() (*models.Post, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse post created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse post updated_at: %w", err)
	}
	return &models.Post{
		ID:        strconv.FormatInt(r.ID, 10),
		AuthorID:  strconv.FormatInt(r.AuthorID, 10),
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

type sqlitePostRepository struct {
	db *sqlx.DB
}

// NewPostRepository creates a new SQLite-based PostRepository.
func NewPostRepository(db *sqlx.DB) PostRepository {
	return &sqlitePostRepository{db: db}
}

func (r *sqlitePostRepository) Create(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	now := time.Now().UTC().Format(timeLayout)

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (author_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		authorID, title, content, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return r.Find(ctx, strconv.FormatInt(id, 10))
}

func (r *sqlitePostRepository) Find(ctx context.Context, id string) (*models.Post, error) {
	var row postRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, author_id, title, content, created_at, updated_at FROM posts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Resource: "Post", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("select post by id: %w", err)
	}
	return row.toModel()
}

func (r *sqlitePostRepository) All(ctx context.Context) ([]models.Post, error) {
	var rows []postRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, author_id, title, content, created_at, updated_at FROM posts
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		post, err := row.toModel()
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func (r *sqlitePostRepository) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if patch.Title != nil {
		title = *patch.Title
	}
	content := current.Content
	if patch.Content != nil {
		content = *patch.Content
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, time.Now().UTC().Format(timeLayout), id)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	return r.Find(ctx, id)
}

func (r *sqlitePostRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
