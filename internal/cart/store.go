// Package cart owns the shopping cart: an ordered sequence of product
// lines persisted as a JSON blob. Every mutation writes through to the
// persistence surface before returning and then notifies subscribers,
// so a read after a mutation always observes the update.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/garv2214/Toolkit/internal/domain"
	"github.com/garv2214/Toolkit/internal/storage"
)

// Store is the cart state machine. It is single-writer: operations run
// to completion on the calling goroutine and there is no internal
// locking. Concurrent writers need coordination above this layer.
type Store struct {
	storage storage.Store
	key     string

	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(domain.Cart)
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the blob key the cart is persisted under.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// NewStore creates a cart store backed by st. The cart starts empty on
// first access and persists until cleared.
func NewStore(st storage.Store, opts ...Option) *Store {
	s := &Store{
		storage: st,
		key:     storage.KeyCart,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the current cart. A never-saved cart is empty, not an
// error.
func (s *Store) Get(ctx context.Context) (domain.Cart, error) {
	data, err := s.storage.Load(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

// AddItem puts quantity units of product in the cart. An existing line
// accumulates; a new line is snapshotted from the product and appended.
// Stock limits are not enforced here; that is the validator's job.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	cart, err := s.Get(ctx)
	if err != nil {
		return err
	}

	if i := cart.Find(product.ID); i >= 0 {
		cart[i].Quantity += quantity
	} else {
		cart = append(cart, domain.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Category:  product.Category,
			Quantity:  quantity,
		})
	}

	return s.save(ctx, cart)
}

// RemoveItem drops the line for productID. Removing an absent line is a
// no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID int64) error {
	cart, err := s.Get(ctx)
	if err != nil {
		return err
	}

	filtered := cart[:0]
	for _, line := range cart {
		if line.ProductID != productID {
			filtered = append(filtered, line)
		}
	}

	return s.save(ctx, filtered)
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line; a cart never persists a non-positive quantity.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	cart, err := s.Get(ctx)
	if err != nil {
		return err
	}

	i := cart.Find(productID)
	if i < 0 {
		return ErrItemNotFound
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	cart[i].Quantity = quantity
	return s.save(ctx, cart)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.notify(domain.Cart{})
	return nil
}

// QuantityOf returns the quantity in the cart for productID, zero if
// absent.
func (s *Store) QuantityOf(ctx context.Context, productID int64) (int, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	if i := cart.Find(productID); i >= 0 {
		return cart[i].Quantity, nil
	}
	return 0, nil
}

// Contains reports whether the cart has a line for productID.
func (s *Store) Contains(ctx context.Context, productID int64) (bool, error) {
	qty, err := s.QuantityOf(ctx, productID)
	return qty > 0, err
}

// Count is the total quantity across all lines, the cart badge number.
func (s *Store) Count(ctx context.Context) (int, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// Subtotal is the sum of price×quantity over the cart.
func (s *Store) Subtotal(ctx context.Context) (int64, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cart.Subtotal(), nil
}

// Validate checks checkout readiness: the cart must be non-empty and
// every line must carry an identifier, name, price and a positive
// quantity. Store mutations never produce an invalid line themselves;
// only an imported cart can.
func (s *Store) Validate(ctx context.Context) (Validation, error) {
	cart, err := s.Get(ctx)
	if err != nil {
		return Validation{}, err
	}

	if len(cart) == 0 {
		return Validation{Valid: false, Message: "cart is empty"}, nil
	}

	for _, line := range cart {
		if line.ProductID == 0 || line.Name == "" || line.Price == 0 || line.Quantity <= 0 {
			return Validation{Valid: false, Message: "cart contains invalid items"}, nil
		}
	}

	return Validation{Valid: true, Message: "cart is valid"}, nil
}

// Subscribe registers fn to run synchronously after every mutation, in
// registration order, with the new cart snapshot. The returned function
// unsubscribes. Panics in a subscriber are not recovered here.
func (s *Store) Subscribe(fn func(domain.Cart)) func() {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// save persists the cart and then notifies. The write completes before
// any subscriber runs and before the mutation returns.
func (s *Store) save(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.notify(cart)
	return nil
}

// notify iterates a snapshot of the registry so subscribers may
// unsubscribe themselves mid-notification. There is no reentrancy
// guard: a subscriber mutating the cart re-triggers notification.
func (s *Store) notify(cart domain.Cart) {
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)

	snapshot := cart.Clone()
	for _, sub := range subs {
		sub.fn(snapshot)
	}
}
