package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.RunMigrations("./migrations"))
	return repo
}

func TestLoad_FullFeed(t *testing.T) {
	repo := newTestRepository(t)

	c, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 24, c.Count())
	assert.Len(t, c.Categories(), 9)
}

func TestLoad_ProductFields(t *testing.T) {
	repo := newTestRepository(t)

	c, err := repo.Load(context.Background())
	require.NoError(t, err)

	p, ok := c.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Luxury Fountain Pen", p.Name)
	assert.Equal(t, "pens", p.Category)
	assert.Equal(t, int64(1299), p.Price)
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, 4.9, p.Rating)
	assert.Equal(t, []string{"premium", "luxury"}, p.Tags, "tags are stored comma-joined")
}

func TestLoad_CategoriesKeepPositionOrder(t *testing.T) {
	repo := newTestRepository(t)

	c, err := repo.Load(context.Background())
	require.NoError(t, err)

	cats := c.Categories()
	require.Len(t, cats, 9)
	assert.Equal(t, "pens", cats[0].Key)
	assert.Equal(t, "kits", cats[8].Key)
}

func TestLoad_MatchesSeedData(t *testing.T) {
	repo := newTestRepository(t)

	c, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Seed().Stats(), c.Stats())
}

func TestLoad_CachesAcrossCalls(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	second, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestLoad_CancelledContext(t *testing.T) {
	repo := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.Error(t, err)
}
