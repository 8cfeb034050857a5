package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_LoadMissingKey(t *testing.T) {
	sut := NewMemory()

	_, err := sut.Load(context.Background(), KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SaveThenLoad(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte(`[]`)))

	value, err := sut.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

func TestMemory_SaveOverwrites(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte("old")))
	require.NoError(t, sut.Save(ctx, KeyCart, []byte("new")))

	value, err := sut.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestMemory_Delete(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	require.NoError(t, sut.Save(ctx, KeyCart, []byte("x")))
	require.NoError(t, sut.Delete(ctx, KeyCart))

	_, err := sut.Load(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_DeleteMissingKeyIsNoop(t *testing.T) {
	sut := NewMemory()

	assert.NoError(t, sut.Delete(context.Background(), "absent"))
}

func TestMemory_DefensiveCopies(t *testing.T) {
	sut := NewMemory()
	ctx := context.Background()

	in := []byte("original")
	require.NoError(t, sut.Save(ctx, KeyCart, in))
	in[0] = 'X'

	out, err := sut.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), out, "stored value must not alias the caller's slice")

	out[0] = 'Y'
	again, err := sut.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
