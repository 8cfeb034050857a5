package cart

import (
	"context"

	"github.com/garv2214/Toolkit/internal/domain"
	"github.com/garv2214/Toolkit/internal/pricing"
)

// Summary is the cart header view: lines plus undiscounted totals.
// Discounted totals come from the pricing package.
type Summary struct {
	Items     domain.Cart `json:"items"`
	ItemCount int         `json:"itemCount"`
	Subtotal  int64       `json:"subtotal"`
	Tax       int64       `json:"tax"`
	Total     int64       `json:"total"`
}

// Summary builds the cart header view.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return Summary{}, err
	}

	subtotal := cart.Subtotal()
	tax := pricing.TaxOn(subtotal)
	return Summary{
		Items:     cart,
		ItemCount: cart.Count(),
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
	}, nil
}

// Stats are descriptive cart metrics.
type Stats struct {
	LineCount     int
	TotalQuantity int
	Subtotal      int64
	Tax           int64
	Total         int64
	AveragePrice  float64 // subtotal per line, zero for an empty cart
	MostExpensive int64   // highest unit price in the cart
	Cheapest      int64   // lowest unit price in the cart
}

// Stats computes cart metrics from the current lines.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		LineCount:     len(summary.Items),
		TotalQuantity: summary.ItemCount,
		Subtotal:      summary.Subtotal,
		Tax:           summary.Tax,
		Total:         summary.Total,
	}
	if len(summary.Items) == 0 {
		return stats, nil
	}

	stats.AveragePrice = float64(summary.Subtotal) / float64(len(summary.Items))
	stats.MostExpensive = summary.Items[0].Price
	stats.Cheapest = summary.Items[0].Price
	for _, line := range summary.Items {
		if line.Price > stats.MostExpensive {
			stats.MostExpensive = line.Price
		}
		if line.Price < stats.Cheapest {
			stats.Cheapest = line.Price
		}
	}
	return stats, nil
}

// CategoryTotal aggregates the cart lines of one category.
type CategoryTotal struct {
	Lines    int
	Quantity int
	Total    int64
}

// CategoryTotals groups the cart by category key.
func (s *Store) CategoryTotals(ctx context.Context) (map[string]CategoryTotal, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]CategoryTotal)
	for _, line := range cart {
		t := totals[line.Category]
		t.Lines++
		t.Quantity += line.Quantity
		t.Total += line.Price * int64(line.Quantity)
		totals[line.Category] = t
	}
	return totals, nil
}
