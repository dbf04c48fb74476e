package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"mliou521/Inkwell/internal/api/models"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go -package=mocks

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// Register hashes the password and inserts a new user. Uniqueness
	// violations propagate as storage errors.
	Register(ctx context.Context, username, password string) (*models.User, error)
	// Find returns the user or a *NotFoundError.
	Find(ctx context.Context, id string) (*models.User, error)
	// FindByUsername returns (nil, nil) when no row matches.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByCredentials returns (nil, nil) for an unknown username or a
	// password mismatch; the two cases are indistinguishable to the caller.
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
	// Update merges the supplied fields over the current row, writes all
	// columns, and returns the re-read user.
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	// Delete removes the row by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

type userRow struct {
	ID           int64          `db:"id"`
	Username     string         `db:"username"`
	Password     string         `db:"password"`
	FavoriteBook sql.NullString `db:"favorite_book"`
}

func (r userRow) toModel() (*models.User, error) {
	user := &models.User{
		ID:       strconv.FormatInt(r.ID, 10),
		Username: r.Username,
		Password: r.Password,
	}
	if r.FavoriteBook.Valid && r.FavoriteBook.String != "" {
		var book models.FavoriteBook
		if err := json.Unmarshal([]byte(r.FavoriteBook.String), &book); err != nil {
			return nil, fmt.Errorf("decode favorite book: %w", err)
		}
		user.FavoriteBook = &book
	}
	return user, nil
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		username, string(hash))
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return r.Find(ctx, strconv.FormatInt(id, 10))
}

func (r *sqliteUserRepository) Find(ctx context.Context, id string) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, username, password, favorite_book FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Resource: "User", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("select user by id: %w", err)
	}
	return row.toModel()
}

func (r *sqliteUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, username, password, favorite_book FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user by username: %w", err)
	}
	return row.toModel()
}

func (r *sqliteUserRepository) FindByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	// bcrypt comparison is constant-time; a miss looks identical to an
	// unknown username.
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

func (r *sqliteUserRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	username := current.Username
	if patch.Username != nil {
		username = *patch.Username
	}
	password := current.Password
	if patch.Password != nil {
		password = *patch.Password
	}
	book := current.FavoriteBook
	if patch.FavoriteBook != nil {
		book = patch.FavoriteBook
	}

	var bookCol sql.NullString
	if book != nil {
		encoded, err := json.Marshal(book)
		if err != nil {
			return nil, fmt.Errorf("encode favorite book: %w", err)
		}
		bookCol = sql.NullString{String: string(encoded), Valid: true}
	}

	// All columns are written so the statement stays static regardless of
	// which fields the patch carries.
	_, err = r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password = ?, favorite_book = ? WHERE id = ?`,
		username, password, bookCol, id)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Re-read rather than trusting the write's echo.
	return r.Find(ctx, id)
}

func (r *sqliteUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
