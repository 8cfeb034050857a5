// Package catalog holds the static product and category repository. All
// operations are pure reads over data loaded once at startup; lookups
// never fail, absence comes back as an empty slice or a false ok.
package catalog

import (
	"math"
	"strings"

	"github.com/garv2214/Toolkit/internal/domain"
)

const (
	// DefaultLowStockThreshold marks products as low stock below this count.
	DefaultLowStockThreshold = 20

	// DefaultRelatedLimit caps the related-products list.
	DefaultRelatedLimit = 4

	featuredCount   = 6
	trendingLimit   = 8
	bestSellerLimit = 8
)

// Catalog is a read-only product/category repository. Product order is
// catalog order and is meaningful: it drives the featured and newest
// sorts.
type Catalog struct {
	products   []domain.Product
	byID       map[int64]int
	categories []domain.Category
	byKey      map[string]domain.Category
}

// New builds a catalog from a product feed and its category set.
func New(products []domain.Product, categories []domain.Category) *Catalog {
	c := &Catalog{
		products:   products,
		byID:       make(map[int64]int, len(products)),
		categories: categories,
		byKey:      make(map[string]domain.Category, len(categories)),
	}
	for i, p := range products {
		c.byID[p.ID] = i
	}
	for _, cat := range categories {
		c.byKey[cat.Key] = cat
	}
	return c
}

// All returns every product in catalog order. The slice is a copy.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by its identifier.
func (c *Catalog) ByID(id int64) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ByCategory returns all products with the given category key.
func (c *Catalog) ByCategory(key string) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Category == key
	})
}

// Search matches the query case-insensitively against name or
// description.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(query)
	return c.filter(func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// ByPriceRange returns products with min <= price <= max.
func (c *Catalog) ByPriceRange(min, max int64) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Price >= min && p.Price <= max
	})
}

// ByMinRating returns products rated at or above r.
func (c *Catalog) ByMinRating(r float64) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Rating >= r
	})
}

// ByTag returns products carrying the given tag.
func (c *Catalog) ByTag(tag string) []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.HasTag(tag)
	})
}

// Related returns up to limit products from the same category as id,
// excluding the product itself, in catalog order. A limit <= 0 uses
// DefaultRelatedLimit. Unknown ids yield an empty result.
func (c *Catalog) Related(id int64, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	product, ok := c.ByID(id)
	if !ok {
		return nil
	}

	related := c.filter(func(p domain.Product) bool {
		return p.Category == product.Category && p.ID != id
	})
	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

// InStock returns products with stock remaining.
func (c *Catalog) InStock() []domain.Product {
	return c.filter(func(p domain.Product) bool {
		return p.Stock > 0
	})
}

// LowStock returns in-stock products below threshold. A threshold <= 0
// uses DefaultLowStockThreshold.
func (c *Catalog) LowStock(threshold int) []domain.Product {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return c.filter(func(p domain.Product) bool {
		return p.Stock > 0 && p.Stock < threshold
	})
}

// Featured returns the first products in catalog order, the storefront's
// landing-page selection.
func (c *Catalog) Featured() []domain.Product {
	n := featuredCount
	if n > len(c.products) {
		n = len(c.products)
	}
	out := make([]domain.Product, n)
	copy(out, c.products[:n])
	return out
}

// Trending returns up to 8 products tagged "trending".
func (c *Catalog) Trending() []domain.Product {
	return limitTo(c.ByTag("trending"), trendingLimit)
}

// BestSellers returns up to 8 products tagged "bestseller".
func (c *Catalog) BestSellers() []domain.Product {
	return limitTo(c.ByTag("bestseller"), bestSellerLimit)
}

// Count is the number of products in the catalog.
func (c *Catalog) Count() int {
	return len(c.products)
}

// CountInCategory is the number of products under a category key.
func (c *Catalog) CountInCategory(key string) int {
	return len(c.ByCategory(key))
}

// AverageRating is the mean rating across the catalog, rounded to one
// decimal place. Zero for an empty catalog.
func (c *Catalog) AverageRating() float64 {
	if len(c.products) == 0 {
		return 0
	}
	var sum float64
	for _, p := range c.products {
		sum += p.Rating
	}
	return math.Round(sum/float64(len(c.products))*10) / 10
}

// TotalInventory is the total stock count across all products.
func (c *Catalog) TotalInventory() int {
	total := 0
	for _, p := range c.products {
		total += p.Stock
	}
	return total
}

// PriceRange describes the observed catalog prices.
type PriceRange struct {
	Min     int64
	Max     int64
	Average int64
}

// PriceRange returns the min, max and rounded average price. Zero values
// for an empty catalog.
func (c *Catalog) PriceRange() PriceRange {
	if len(c.products) == 0 {
		return PriceRange{}
	}

	pr := PriceRange{Min: c.products[0].Price, Max: c.products[0].Price}
	var sum int64
	for _, p := range c.products {
		if p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
		sum += p.Price
	}
	pr.Average = int64(math.Round(float64(sum) / float64(len(c.products))))
	return pr
}

// Categories returns all categories in declaration order. The slice is a
// copy.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryByKey looks up a category by its key.
func (c *Catalog) CategoryByKey(key string) (domain.Category, bool) {
	cat, ok := c.byKey[key]
	return cat, ok
}

// Stats summarises the loaded catalog, logged at startup.
type Stats struct {
	TotalProducts   int
	TotalCategories int
	TotalInventory  int
	AverageRating   float64
	PriceRange      PriceRange
	InStockCount    int
	LowStockCount   int
}

// Stats computes the startup summary for the loaded catalog.
func (c *Catalog) Stats() Stats {
	return Stats{
		TotalProducts:   c.Count(),
		TotalCategories: len(c.categories),
		TotalInventory:  c.TotalInventory(),
		AverageRating:   c.AverageRating(),
		PriceRange:      c.PriceRange(),
		InStockCount:    len(c.InStock()),
		LowStockCount:   len(c.LowStock(0)),
	}
}

func (c *Catalog) filter(keep func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func limitTo(products []domain.Product, limit int) []domain.Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}
