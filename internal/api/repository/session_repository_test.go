package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndFindByToken(t *testing.T) {
	pool := newTestDB(t)
	users := NewUserRepository(pool)
	sessions := NewSessionRepository(pool)
	ctx := context.Background()

	user, err := users.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	session, err := sessions.Create(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.False(t, session.CreatedAt.IsZero())

	found, err := sessions.FindByToken(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, session.UserID, found.UserID)
	assert.Equal(t, session.Token, found.Token)
	assert.True(t, session.CreatedAt.Equal(found.CreatedAt))
}

func TestSessionRepository_FindByTokenMiss(t *testing.T) {
	sessions := NewSessionRepository(newTestDB(t))

	// An unknown token is an absent value, not an error.
	found, err := sessions.FindByToken(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepository_TokensAreUnique(t *testing.T) {
	pool := newTestDB(t)
	users := NewUserRepository(pool)
	sessions := NewSessionRepository(pool)
	ctx := context.Background()

	user, err := users.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	first, err := sessions.Create(ctx, user)
	require.NoError(t, err)
	second, err := sessions.Create(ctx, user)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	// Both stay resolvable: no expiry, no single-session policy.
	found, err := sessions.FindByToken(ctx, first.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
}
