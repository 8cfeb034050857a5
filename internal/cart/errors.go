package cart

import "errors"

var (
	// ErrInvalidQuantity is returned when adding with a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrItemNotFound is returned when updating a product with no line
	// in the cart. Removal of an absent line is not an error.
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrInvalidFormat is returned by Import when the payload is not a
	// JSON array of cart lines.
	ErrInvalidFormat = errors.New("invalid cart format")
)

// Validation is the outcome of a cart readiness check. It is a value,
// not an error: an invalid cart is an expected condition.
type Validation struct {
	Valid   bool
	Message string
}
