// Package filter derives ordered product views from the catalog. The
// engine owns the current criteria; it never mutates the catalog and
// every result is a fresh slice.
package filter

import (
	"sort"
	"strings"

	"github.com/garv2214/Toolkit/internal/catalog"
	"github.com/garv2214/Toolkit/internal/domain"
)

// Engine applies the current criteria to the catalog.
type Engine struct {
	catalog  *catalog.Catalog
	criteria Criteria
}

// NewEngine creates an engine with default criteria.
func NewEngine(c *catalog.Catalog) *Engine {
	e := &Engine{catalog: c}
	e.Reset()
	return e
}

// Reset restores the default criteria. The default price range is
// catalog-wide, so the price stage passes everything until narrowed.
func (e *Engine) Reset() {
	e.criteria = Criteria{
		PriceMin: 0,
		PriceMax: e.catalog.PriceRange().Max,
		SortBy:   SortFeatured,
	}
}

func (e *Engine) SetCategory(category string) {
	e.criteria.Category = category
}

func (e *Engine) SetPriceRange(min, max int64) {
	e.criteria.PriceMin = min
	e.criteria.PriceMax = max
}

func (e *Engine) SetMinRating(rating float64) {
	e.criteria.MinRating = rating
}

func (e *Engine) SetQuery(query string) {
	e.criteria.Query = query
}

func (e *Engine) SetSort(sortBy Sort) {
	e.criteria.SortBy = sortBy
}

// AddTag adds a tag to the criteria tag set. Duplicates are ignored.
func (e *Engine) AddTag(tag string) {
	if !e.criteria.hasTag(tag) {
		e.criteria.Tags = append(e.criteria.Tags, tag)
	}
}

// RemoveTag drops a tag from the criteria tag set.
func (e *Engine) RemoveTag(tag string) {
	tags := e.criteria.Tags[:0]
	for _, t := range e.criteria.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	e.criteria.Tags = tags
}

// Criteria returns a snapshot of the current criteria.
func (e *Engine) Criteria() Criteria {
	c := e.criteria
	c.Tags = append([]string(nil), e.criteria.Tags...)
	return c
}

// Apply runs the filter pipeline over the catalog. Stages narrow in a
// fixed order: category, query, price range, rating, tags, then sort.
// Sort must come last; the filter stages all preserve catalog order.
func (e *Engine) Apply() []domain.Product {
	c := e.criteria
	filtered := e.catalog.All()

	if c.hasCategory() {
		filtered = keep(filtered, func(p domain.Product) bool {
			return p.Category == c.Category
		})
	}

	if c.Query != "" {
		q := strings.ToLower(c.Query)
		filtered = keep(filtered, func(p domain.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q)
		})
	}

	filtered = keep(filtered, func(p domain.Product) bool {
		return p.Price >= c.PriceMin && p.Price <= c.PriceMax
	})

	if c.MinRating > 0 {
		filtered = keep(filtered, func(p domain.Product) bool {
			return p.Rating >= c.MinRating
		})
	}

	if len(c.Tags) > 0 {
		filtered = keep(filtered, func(p domain.Product) bool {
			for _, tag := range p.Tags {
				if c.hasTag(tag) {
					return true
				}
			}
			return false
		})
	}

	sortProducts(filtered, c.SortBy)
	return filtered
}

// sortProducts orders products in place. Ties keep catalog order, so the
// sorts must be stable.
func sortProducts(products []domain.Product, by Sort) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	default:
		// featured: catalog order, nothing to do
	}
}

// Range is an observed min/max price pair.
type Range struct {
	Min int64
	Max int64
}

// Suggestions summarises the current filtered set for the filter UI.
type Suggestions struct {
	Count      int
	PriceRange *Range // nil when the result set is empty
	Tags       []string
	Categories []string
}

// Suggestions derives facet data from the current filtered set. Tag and
// category unions preserve first-seen order.
func (e *Engine) Suggestions() Suggestions {
	filtered := e.Apply()

	s := Suggestions{Count: len(filtered)}
	if len(filtered) == 0 {
		return s
	}

	r := Range{Min: filtered[0].Price, Max: filtered[0].Price}
	seenTags := make(map[string]bool)
	seenCategories := make(map[string]bool)
	for _, p := range filtered {
		if p.Price < r.Min {
			r.Min = p.Price
		}
		if p.Price > r.Max {
			r.Max = p.Price
		}
		for _, tag := range p.Tags {
			if !seenTags[tag] {
				seenTags[tag] = true
				s.Tags = append(s.Tags, tag)
			}
		}
		if !seenCategories[p.Category] {
			seenCategories[p.Category] = true
			s.Categories = append(s.Categories, p.Category)
		}
	}
	s.PriceRange = &r
	return s
}

// PageInfo describes one page of a paginated result set.
type PageInfo struct {
	CurrentPage int
	TotalPages  int
	PerPage     int
	TotalItems  int
	HasNext     bool
	HasPrev     bool
}

// Page slices one page out of products. Pages are 1-based; out-of-range
// pages return an empty slice.
func Page(products []domain.Product, perPage, page int) ([]domain.Product, PageInfo) {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(products) + perPage - 1) / perPage
	info := PageInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PerPage:     perPage,
		TotalItems:  len(products),
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}

	start := (page - 1) * perPage
	if start >= len(products) {
		return nil, info
	}
	end := start + perPage
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], info
}

func keep(products []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
