// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"sort"

	"github.com/your-org/storefront-bff/internal/domain/pricing"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
)

// ordersAPI is the slice of the orders service client the submission flow
// needs; tests substitute a stub.
type ordersAPI interface {
	Create(ctx context.Context, authToken string, req *services.CreateOrderRequest) (string, error)
	ListByUser(ctx context.Context, authToken string, userID int64) ([]services.Order, error)
}

// Service runs order submissions against the orders microservice and
// reconciles session state with the outcome
type Service struct {
	store  *session.Store
	orders ordersAPI
}

// NewService creates a new order service
func NewService(store *session.Store, orders ordersAPI) *Service {
	return &Service{
		store:  store,
		orders: orders,
	}
}

// Submit runs the submission state machine for the given session.
//
// Entry into Submitting requires a non-empty cart and a logged-in user;
// otherwise the submission is rejected with a ValidationError and the
// remote service is never contacted. On success the cart and coupon are
// cleared; on failure they are left untouched so the user can retry.
func (s *Service) Submit(ctx context.Context, sessionID string) (*Submission, error) {
	sub := &Submission{State: StateIdle}

	user := s.store.GetUser(ctx, sessionID)
	if user == nil {
		return sub, &ValidationError{Reason: "you must be logged in to place an order"}
	}

	cart := s.store.GetCart(ctx, sessionID)
	if len(cart) == 0 {
		return sub, &ValidationError{Reason: "the cart is empty"}
	}

	coupon := s.store.GetCoupon(ctx, sessionID)
	totals := pricing.ComputeTotals(cart, coupon)

	// Snapshot the payload before going remote
	lines := make([]services.OrderLine, len(cart))
	for i, item := range cart {
		lines[i] = services.OrderLine{
			ProductIDRef: item.ProductID,
			Name:         item.Name,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
		}
	}
	sub.Payload = &services.CreateOrderRequest{
		UserIDRef: user.UserID,
		Total:     totals.Total,
		Lines:     lines,
	}
	sub.State = StateSubmitting

	confirmation, err := s.orders.Create(ctx, user.AuthToken, sub.Payload)
	if err != nil {
		sub.State = StateFailed
		sub.FailureReason, sub.Retryable = classifyFailure(err)
		return sub, err
	}

	// Success: drop cart and coupon; a persistence hiccup here must not
	// mask the placed order, the session record simply expires later
	_ = s.store.CompleteCheckout(ctx, sessionID)

	sub.State = StateSucceeded
	sub.Confirmation = confirmation
	return sub, nil
}

// History returns the session user's past orders, newest first
func (s *Service) History(ctx context.Context, sessionID string) ([]services.Order, error) {
	user := s.store.GetUser(ctx, sessionID)
	if user == nil {
		return nil, &ValidationError{Reason: "you must be logged in to view your orders"}
	}

	orders, err := s.orders.ListByUser(ctx, user.AuthToken, user.UserID)
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderID > orders[j].OrderID
	})
	return orders, nil
}

// classifyFailure maps a remote-call error onto a user-facing reason
func classifyFailure(err error) (reason string, retryable bool) {
	var transport *services.TransportError
	if errors.As(err, &transport) {
		return "the order service is unreachable, please try again", true
	}

	var rejected *services.RejectedError
	if errors.As(err, &rejected) {
		if rejected.Message != "" {
			return rejected.Message, true
		}
		return "the order was rejected by the order service", true
	}

	return "an unexpected error occurred while placing the order", true
}
