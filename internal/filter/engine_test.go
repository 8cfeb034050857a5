package filter

import (
	"testing"

	"github.com/garv2214/Toolkit/internal/catalog"
	"github.com/garv2214/Toolkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Seed())
}

func ids(products []domain.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_DefaultsPassEverything(t *testing.T) {
	sut := newTestEngine()

	result := sut.Apply()
	assert.Len(t, result, 24)
	assert.Equal(t, int64(1), result[0].ID, "featured sort keeps catalog order")
	assert.Equal(t, int64(24), result[23].ID)
}

func TestApply_CategoryFilter(t *testing.T) {
	sut := newTestEngine()
	sut.SetCategory("pens")

	assert.Equal(t, []int64{1, 2, 3}, ids(sut.Apply()))
}

func TestApply_CategoryAllDisablesFilter(t *testing.T) {
	sut := newTestEngine()
	sut.SetCategory(CategoryAll)

	assert.Len(t, sut.Apply(), 24)
}

func TestApply_QueryMatchesNameAndDescription(t *testing.T) {
	sut := newTestEngine()
	sut.SetQuery("WATERCOLOR")

	// 14 by name, 15 by name and description. Matching is
	// case-insensitive.
	assert.Equal(t, []int64{14, 15}, ids(sut.Apply()))
}

func TestApply_PriceRange(t *testing.T) {
	sut := newTestEngine()
	sut.SetPriceRange(0, 200)

	result := sut.Apply()
	assert.Equal(t, []int64{4, 7, 12, 19}, ids(result))
	for _, p := range result {
		assert.LessOrEqual(t, p.Price, int64(200))
	}
}

func TestApply_MinRating(t *testing.T) {
	sut := newTestEngine()
	sut.SetMinRating(4.8)

	assert.Equal(t, []int64{2, 3, 11, 14, 23, 24}, ids(sut.Apply()))
}

func TestApply_TagsMatchAny(t *testing.T) {
	sut := newTestEngine()
	sut.AddTag("luxury")
	sut.AddTag("bestseller")

	// A product passes when it carries any selected tag.
	assert.Equal(t, []int64{2, 3, 22}, ids(sut.Apply()))
}

func TestApply_StagesCombine(t *testing.T) {
	sut := newTestEngine()
	sut.SetCategory("pens")
	sut.SetPriceRange(0, 700)
	sut.SetMinRating(4.6)

	assert.Equal(t, []int64{2}, ids(sut.Apply()))
}

func TestApply_SortPriceLowIsStable(t *testing.T) {
	sut := newTestEngine()
	sut.SetSort(SortPriceLow)

	result := sut.Apply()
	require.Len(t, result, 24)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Price, result[i].Price)
	}
	// Equal prices keep catalog order: 7 before 19 at 149, 4 before 12
	// at 199.
	assert.Equal(t, []int64{7, 19, 4, 12}, ids(result[:4]))
}

func TestApply_SortPriceHigh(t *testing.T) {
	sut := newTestEngine()
	sut.SetSort(SortPriceHigh)

	result := sut.Apply()
	assert.Equal(t, int64(24), result[0].ID)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Price, result[i].Price)
	}
}

func TestApply_SortRating(t *testing.T) {
	sut := newTestEngine()
	sut.SetSort(SortRating)

	result := sut.Apply()
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
	// 3 and 23 share 4.9; catalog order breaks the tie.
	assert.Equal(t, []int64{3, 23}, ids(result[:2]))
}

func TestApply_SortNewestReversesCatalogOrder(t *testing.T) {
	sut := newTestEngine()
	sut.SetSort(SortNewest)

	result := sut.Apply()
	assert.Equal(t, int64(24), result[0].ID)
	assert.Equal(t, int64(1), result[23].ID)
}

func TestReset_RestoresDefaults(t *testing.T) {
	sut := newTestEngine()
	sut.SetCategory("pens")
	sut.SetPriceRange(100, 200)
	sut.SetMinRating(4.5)
	sut.SetQuery("pen")
	sut.SetSort(SortRating)
	sut.AddTag("luxury")

	sut.Reset()

	c := sut.Criteria()
	assert.Empty(t, c.Category)
	assert.Equal(t, int64(0), c.PriceMin)
	assert.Equal(t, int64(1899), c.PriceMax, "default ceiling is the catalog maximum")
	assert.Zero(t, c.MinRating)
	assert.Empty(t, c.Query)
	assert.Equal(t, SortFeatured, c.SortBy)
	assert.Empty(t, c.Tags)
	assert.Len(t, sut.Apply(), 24)
}

func TestAddTag_IgnoresDuplicates(t *testing.T) {
	sut := newTestEngine()
	sut.AddTag("luxury")
	sut.AddTag("luxury")

	assert.Equal(t, []string{"luxury"}, sut.Criteria().Tags)
}

func TestRemoveTag(t *testing.T) {
	sut := newTestEngine()
	sut.AddTag("luxury")
	sut.AddTag("premium")

	sut.RemoveTag("luxury")
	assert.Equal(t, []string{"premium"}, sut.Criteria().Tags)

	sut.RemoveTag("absent")
	assert.Equal(t, []string{"premium"}, sut.Criteria().Tags)
}

func TestCriteria_SnapshotIsIndependent(t *testing.T) {
	sut := newTestEngine()
	sut.AddTag("luxury")

	c := sut.Criteria()
	c.Tags[0] = "mutated"

	assert.Equal(t, []string{"luxury"}, sut.Criteria().Tags)
}

func TestSuggestions_FacetsFromFilteredSet(t *testing.T) {
	sut := newTestEngine()
	sut.SetCategory("pens")

	s := sut.Suggestions()
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.PriceRange)
	assert.Equal(t, Range{Min: 299, Max: 1299}, *s.PriceRange)
	assert.Equal(t, []string{"popular", "affordable", "trending", "bestseller", "premium", "luxury"}, s.Tags)
	assert.Equal(t, []string{"pens"}, s.Categories)
}

func TestSuggestions_EmptyResultSet(t *testing.T) {
	sut := newTestEngine()
	sut.SetQuery("no such product")

	s := sut.Suggestions()
	assert.Zero(t, s.Count)
	assert.Nil(t, s.PriceRange)
	assert.Empty(t, s.Tags)
	assert.Empty(t, s.Categories)
}

func TestPage_FirstAndLast(t *testing.T) {
	products := catalog.Seed().All()

	page1, info := Page(products, 10, 1)
	assert.Len(t, page1, 10)
	assert.Equal(t, PageInfo{CurrentPage: 1, TotalPages: 3, PerPage: 10, TotalItems: 24, HasNext: true, HasPrev: false}, info)

	page3, info := Page(products, 10, 3)
	assert.Len(t, page3, 4)
	assert.True(t, info.HasPrev)
	assert.False(t, info.HasNext)
}

func TestPage_OutOfRange(t *testing.T) {
	products := catalog.Seed().All()

	page, info := Page(products, 10, 4)
	assert.Empty(t, page)
	assert.Equal(t, 4, info.CurrentPage)
	assert.False(t, info.HasNext)
}

func TestPage_ClampsBadArguments(t *testing.T) {
	products := catalog.Seed().All()

	page, info := Page(products, 0, 0)
	assert.Len(t, page, 1, "per-page and page clamp to 1")
	assert.Equal(t, 24, info.TotalPages)
}
