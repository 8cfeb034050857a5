package filter

// Sort selects the ordering of filtered results.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortRating    Sort = "rating"
	SortNewest    Sort = "newest"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Criteria is the filter/sort state. Mutate it only through the engine's
// setters; Reset restores the defaults (no category, catalog-wide price
// range, rating 0, empty query, featured sort, no tags).
type Criteria struct {
	Category  string
	PriceMin  int64
	PriceMax  int64
	MinRating float64
	Query     string
	SortBy    Sort
	Tags      []string
}

func (c Criteria) hasCategory() bool {
	return c.Category != "" && c.Category != CategoryAll
}

func (c Criteria) hasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
