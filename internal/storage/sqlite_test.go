package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	sut, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sut.Close() })

	require.NoError(t, sut.RunMigrations("./migrations"))
	return sut
}

func TestSQLite_LoadMissingKey(t *testing.T) {
	sut := setupTestSQLite(t)

	_, err := sut.Load(context.Background(), KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_SaveThenLoad(t *testing.T) {
	sut := setupTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte(`[{"id":1}]`)))

	value, err := sut.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), value)
}

func TestSQLite_SaveUpserts(t *testing.T) {
	sut := setupTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte("old")))
	require.NoError(t, sut.Save(ctx, KeyCart, []byte("new")))

	value, err := sut.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestSQLite_Delete(t *testing.T) {
	sut := setupTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte("x")))
	require.NoError(t, sut.Delete(ctx, KeyCart))

	_, err := sut.Load(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLite_DeleteMissingKeyIsNoop(t *testing.T) {
	sut := setupTestSQLite(t)

	assert.NoError(t, sut.Delete(context.Background(), "absent"))
}

func TestSQLite_KeysAreIndependent(t *testing.T) {
	sut := setupTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte("cart")))
	require.NoError(t, sut.Save(ctx, KeySession, []byte("session")))
	require.NoError(t, sut.Delete(ctx, KeyCart))

	value, err := sut.Load(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, []byte("session"), value)
}
