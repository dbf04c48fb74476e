package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mliou521/Inkwell/internal/api/models"
	"mliou521/Inkwell/internal/api/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (UserService, *mocks.MockUserRepository, *mocks.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	sessions := mocks.NewMockSessionRepository(ctrl)
	return NewUserService(users, sessions), users, sessions
}

func TestUserService_RegisterOpensSession(t *testing.T) {
	svc, users, sessions := newUserService(t)
	ctx := context.Background()

	user := &models.User{ID: "5", Username: "alice", Password: "$2a$10$hash"}
	session := &models.Session{ID: "1", UserID: "5", Token: "tok-abc", CreatedAt: time.Now()}

	users.EXPECT().FindByUsername(ctx, "alice").Return(nil, nil)
	users.EXPECT().Register(ctx, "alice", "password123").Return(user, nil)
	sessions.EXPECT().Create(ctx, user).Return(session, nil)

	got, err := svc.Register(ctx, &models.RegisterRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestUserService_RegisterUsernameTaken(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().FindByUsername(ctx, "alice").
		Return(&models.User{ID: "5", Username: "alice"}, nil)

	_, err := svc.Register(ctx, &models.RegisterRequest{Username: "alice", Password: "password123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_RegisterPropagatesLookupError(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	boom := errors.New("disk on fire")
	users.EXPECT().FindByUsername(ctx, "alice").Return(nil, boom)

	_, err := svc.Register(ctx, &models.RegisterRequest{Username: "alice", Password: "password123"})
	assert.ErrorIs(t, err, boom)
}

func TestUserService_LoginInvalidCredentials(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().FindByCredentials(ctx, "alice", "wrongpassword").Return(nil, nil)

	_, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_UpdateHashesPassword(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().Update(ctx, "5", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
			require.NotNil(t, patch.Password)
			assert.NotEqual(t, "newpassword1", *patch.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*patch.Password), []byte("newpassword1")))
			return &models.User{ID: id, Username: "alice", Password: *patch.Password}, nil
		})

	password := "newpassword1"
	_, err := svc.Update(ctx, "5", &models.UpdateUserRequest{Password: &password})
	require.NoError(t, err)
}

func TestUserService_UpdateWithoutPasswordLeavesItAlone(t *testing.T) {
	svc, users, _ := newUserService(t)
	ctx := context.Background()

	users.EXPECT().Update(ctx, "5", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, patch models.UserPatch) (*models.User, error) {
			assert.Nil(t, patch.Password)
			require.NotNil(t, patch.Username)
			assert.Equal(t, "alice2", *patch.Username)
			return &models.User{ID: id, Username: *patch.Username}, nil
		})

	username := "alice2"
	_, err := svc.Update(ctx, "5", &models.UpdateUserRequest{Username: &username})
	require.NoError(t, err)
}
