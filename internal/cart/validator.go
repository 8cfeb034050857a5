package cart

import (
	"context"
	"fmt"

	"github.com/garv2214/Toolkit/internal/catalog"
)

// Validator checks cart operations against catalog stock. It is a
// collaborator of the store, kept separate on purpose: the store itself
// never enforces stock limits.
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator creates a validator over the given catalog.
func NewValidator(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

// CanAdd checks that the product exists, the quantity is positive and
// stock covers it.
func (v *Validator) CanAdd(productID int64, quantity int) Validation {
	product, ok := v.catalog.ByID(productID)
	if !ok {
		return Validation{Valid: false, Message: "product not found"}
	}
	if quantity < 1 {
		return Validation{Valid: false, Message: "quantity must be at least 1"}
	}
	if quantity > product.Stock {
		return Validation{
			Valid:   false,
			Message: fmt.Sprintf("only %d items available", product.Stock),
		}
	}
	return Validation{Valid: true, Message: "product can be added"}
}

// CanCheckout reports whether the store's cart is ready for checkout.
func (v *Validator) CanCheckout(ctx context.Context, s *Store) (Validation, error) {
	return s.Validate(ctx)
}

// InStock reports whether the product has stock remaining.
func (v *Validator) InStock(productID int64) bool {
	return v.StockCount(productID) > 0
}

// StockCount returns the product's stock, zero for unknown ids.
func (v *Validator) StockCount(productID int64) int {
	product, ok := v.catalog.ByID(productID)
	if !ok {
		return 0
	}
	return product.Stock
}

// QuantityAvailable reports whether stock covers the requested quantity.
func (v *Validator) QuantityAvailable(productID int64, quantity int) bool {
	return quantity <= v.StockCount(productID)
}
