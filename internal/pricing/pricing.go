// Package pricing computes order totals. All arithmetic is on minor
// currency units; rounding happens in two fixed stages (discount first,
// then tax on the discounted base), which is a binding contract — a
// single deferred rounding can differ by one unit on some subtotals.
package pricing

import (
	"math"

	"github.com/garv2214/Toolkit/internal/domain"
)

// TaxRate is the flat tax applied to the discounted base.
const TaxRate = 0.05

// Totals breaks down the price of a cart.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// Compute prices the cart at the given discount rate. It never mutates
// the cart.
func Compute(cart domain.Cart, discountRate float64) Totals {
	subtotal := cart.Subtotal()
	discount := RoundHalfUp(float64(subtotal) * discountRate)
	taxable := subtotal - discount
	tax := RoundHalfUp(float64(taxable) * TaxRate)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    taxable + tax,
	}
}

// TaxOn returns the rounded tax on an undiscounted amount.
func TaxOn(amount int64) int64 {
	return RoundHalfUp(float64(amount) * TaxRate)
}

// RoundHalfUp rounds to the nearest integer with halves going up.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
