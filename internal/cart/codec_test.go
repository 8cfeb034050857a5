package cart

import (
	"context"
	"testing"

	"github.com/garv2214/Toolkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTrip(t *testing.T) {
	source := newTestStore()
	ctx := context.Background()

	require.NoError(t, source.AddItem(ctx, notebook, 2))
	require.NoError(t, source.AddItem(ctx, pen, 1))
	require.NoError(t, source.AddItem(ctx, paintSet, 3))

	exported, err := source.Export(ctx)
	require.NoError(t, err)

	target := newTestStore()
	require.NoError(t, target.Import(ctx, exported))

	want, err := source.Get(ctx)
	require.NoError(t, err)
	got, err := target.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got, "import of an export must reproduce lines, quantities and order")
}

func TestImport_ReplacesExistingCart(t *testing.T) {
	sut := newTestStore()
	ctx := context.Background()

	require.NoError(t, sut.AddItem(ctx, pen, 5))

	payload := []byte(`[{"id": 14, "name": "Watercolor Paint Set", "price": 799, "image": "🎨", "category": "art", "quantity": 2}]`)
	require.NoError(t, sut.Import(ctx, payload))

	cart, err := sut.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1, "import replaces, it does not merge")
	assert.Equal(t, int64(14), cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestImport_EmptyArray(t *testing.T) {
	sut := newTestStore()
	ctx := context.Background()

	require.NoError(t, sut.AddItem(ctx, pen, 1))
	require.NoError(t, sut.Import(ctx, []byte(`[]`)))

	cart, err := sut.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestImport_NotAnArray(t *testing.T) {
	sut := newTestStore()
	ctx := context.Background()

	require.NoError(t, sut.AddItem(ctx, pen, 2))

	notified := false
	sut.Subscribe(func(domain.Cart) { notified = true })

	err := sut.Import(ctx, []byte(`"not an array"`))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	cart, err := sut.Get(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1, "failed import must leave the cart unchanged")
	assert.Equal(t, 2, cart[0].Quantity)
	assert.False(t, notified, "failed import must not notify subscribers")
}

func TestImport_NotJSON(t *testing.T) {
	sut := newTestStore()

	err := sut.Import(context.Background(), []byte(`{{{`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestImport_MalformedRecord(t *testing.T) {
	sut := newTestStore()

	err := sut.Import(context.Background(), []byte(`[{"id": 1}, 42]`))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	err = sut.Import(context.Background(), []byte(`[{"id": "one"}]`))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestParseCart_KeepsLineShape(t *testing.T) {
	cart, err := ParseCart([]byte(`[{"id": 1, "name": "Pen", "price": 299, "quantity": 3}]`))
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, int64(1), cart[0].ProductID)
	assert.Equal(t, 3, cart[0].Quantity)
}
