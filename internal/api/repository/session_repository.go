package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mliou521/Inkwell/internal/api/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=session_repository.go -destination=mocks/session_repository.go -package=mocks

// SessionRepository defines the interface for session data operations.
type SessionRepository interface {
	// Create mints a fresh opaque token for the user and persists it.
	Create(ctx context.Context, user *models.User) (*models.Session, error)
	// FindByToken returns (nil, nil) when no session matches; callers decide
	// how to react.
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type sessionRow struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	Token     string `db:"token"`
	CreatedAt string `db:"created_at"`
}

func (r sessionRow) toModel() (*models.Session, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse session created_at: %w", err)
	}
	return &models.Session{
		ID:        strconv.FormatInt(r.ID, 10),
		UserID:    strconv.FormatInt(r.UserID, 10),
		Token:     r.Token,
		CreatedAt: createdAt,
	}, nil
}

type sqliteSessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new SQLite-based SessionRepository.
func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sqliteSessionRepository{db: db}
}

func (r *sqliteSessionRepository) Create(ctx context.Context, user *models.User) (*models.Session, error) {
	token := uuid.New().String()
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (user_id, token, created_at) VALUES (?, ?, ?)`,
		user.ID, token, now.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &models.Session{
		ID:        strconv.FormatInt(id, 10),
		UserID:    user.ID,
		Token:     token,
		CreatedAt: now,
	}, nil
}

func (r *sqliteSessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, token, created_at FROM sessions WHERE token = ?`, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select session by token: %w", err)
	}
	return row.toModel()
}
