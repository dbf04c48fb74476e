package repository

import (
	"testing"

	"mliou521/Inkwell/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	pool, err := db.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Initialize(pool))

	t.Cleanup(func() { pool.Close() })
	return pool
}
