// internal/domain/cart/service.go
package cart

import (
	"context"

	"github.com/your-org/storefront-bff/internal/domain/pricing"
	"github.com/your-org/storefront-bff/internal/domain/session"
)

// Service mutates the session cart. Every mutation replaces the persisted
// cart through the session store as a whole, which broadcasts exactly one
// cart change per call. Validation of the incoming product (stock, active
// state) is the caller's job; the operations here are pure merges.
type Service struct {
	store *session.Store
}

// NewService creates a new cart service
func NewService(store *session.Store) *Service {
	return &Service{store: store}
}

// Summary is a cart with its active coupon and priced totals
type Summary struct {
	Items  session.Cart   `json:"items"`
	Coupon string         `json:"coupon,omitempty"`
	Totals pricing.Totals `json:"totals"`
}

// Get returns the current cart
func (s *Service) Get(ctx context.Context, sessionID string) session.Cart {
	return s.store.GetCart(ctx, sessionID)
}

// Summary returns the cart together with coupon state and totals
func (s *Service) Summary(ctx context.Context, sessionID string) Summary {
	items := s.store.GetCart(ctx, sessionID)
	coupon := s.store.GetCoupon(ctx, sessionID)
	return Summary{
		Items:  items,
		Coupon: coupon,
		Totals: pricing.ComputeTotals(items, coupon),
	}
}

// AddItem merges an item into the cart: an existing product accumulates
// quantity, a new one is appended
func (s *Service) AddItem(ctx context.Context, sessionID string, item session.Item) (session.Cart, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	cart := s.store.GetCart(ctx, sessionID)
	if i := cart.Find(item.ProductID); i >= 0 {
		cart[i].Quantity += item.Quantity
	} else {
		cart = append(cart, item)
	}

	if err := s.store.SetCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity adjusts a line quantity by delta, clamped to a minimum of 1.
// An absent product ID is a no-op.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int64, delta int) (session.Cart, error) {
	cart := s.store.GetCart(ctx, sessionID)
	i := cart.Find(productID)
	if i < 0 {
		return cart, nil
	}

	newQuantity := cart[i].Quantity + delta
	if newQuantity < 1 {
		newQuantity = 1
	}
	cart[i].Quantity = newQuantity

	if err := s.store.SetCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the matching line. An absent product ID is a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (session.Cart, error) {
	cart := s.store.GetCart(ctx, sessionID)
	i := cart.Find(productID)
	if i < 0 {
		return cart, nil
	}

	cart = append(cart[:i], cart[i+1:]...)

	if err := s.store.SetCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.ClearCart(ctx, sessionID)
}

// ApplyCoupon validates and activates a coupon code, replacing any previous
// one. An unrecognized code is rejected and leaves the prior coupon state
// untouched.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) error {
	normalized, err := pricing.ValidateCoupon(code)
	if err != nil {
		return err
	}
	return s.store.SetCoupon(ctx, sessionID, normalized)
}

// RemoveCoupon deactivates the current coupon, if any
func (s *Service) RemoveCoupon(ctx context.Context, sessionID string) error {
	return s.store.ClearCoupon(ctx, sessionID)
}
