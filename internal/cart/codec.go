package cart

import (
	"context"
	"encoding/json"

	"github.com/garv2214/Toolkit/internal/domain"
)

// Export serialises the cart as an indented JSON array. The output is
// accepted by Import unchanged (round-trip identity).
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(cart, "", "  ")
}

// Import replaces the whole cart with the parsed payload and persists
// it. A payload that is not an array of line-shaped records fails with
// ErrInvalidFormat and leaves the cart untouched; no notification is
// fired. Lines with non-positive quantities are kept as-is and caught
// by Validate, never repaired silently.
func (s *Store) Import(ctx context.Context, data []byte) error {
	cart, err := ParseCart(data)
	if err != nil {
		return err
	}
	return s.save(ctx, cart)
}

// ParseCart validates the external cart representation: a JSON array
// whose elements decode into cart lines. Anything else is
// ErrInvalidFormat.
func ParseCart(data []byte) (domain.Cart, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidFormat
	}

	cart := make(domain.Cart, 0, len(raw))
	for _, record := range raw {
		var line domain.CartLine
		if err := json.Unmarshal(record, &line); err != nil {
			return nil, ErrInvalidFormat
		}
		cart = append(cart, line)
	}
	return cart, nil
}
