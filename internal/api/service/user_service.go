package service

import (
	"context"
	"errors"
	"fmt"

	"mliou521/Inkwell/internal/api/models"
	"mliou521/Inkwell/internal/api/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is returned by Register when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// ErrInvalidCredentials is returned by Login when the username/password pair
// does not resolve to a user.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) UserService {
	return &userService{userRepo: userRepo, sessionRepo: sessionRepo}
}

// Register creates the user and immediately opens a session, so no separate
// login step is needed after signing up.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user, err := s.userRepo.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return s.sessionRepo.Create(ctx, user)
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error) {
	user, err := s.userRepo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return s.sessionRepo.Create(ctx, user)
}

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.Find(ctx, id)
}

// Update hashes a changed password before handing the patch to the
// repository; the repository only ever sees hashed credentials.
func (s *userService) Update(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	patch := models.UserPatch{
		Username:     req.Username,
		FavoriteBook: req.FavoriteBook,
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	return s.userRepo.Update(ctx, id, patch)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
