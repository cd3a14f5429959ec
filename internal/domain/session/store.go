// internal/domain/session/store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cmdable is the slice of the Redis API the store uses. *redis.Client
// satisfies it; tests substitute an in-memory implementation.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store owns all browser-session state: user identity, cart and active
// coupon. Every record lives in Redis under the session ID with the session
// TTL, mirroring the tab-scoped storage of the storefront. Reads degrade to
// empty defaults on missing or unreadable data; they never fail upward.
type Store struct {
	Notifier

	redis Cmdable
	ttl   time.Duration
}

// NewStore creates a new session store
func NewStore(client Cmdable, ttl time.Duration) *Store {
	return &Store{
		redis: client,
		ttl:   ttl,
	}
}

func userKey(sessionID string) string {
	return fmt.Sprintf("session:%s:user", sessionID)
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("session:%s:cart", sessionID)
}

func couponKey(sessionID string) string {
	return fmt.Sprintf("session:%s:coupon", sessionID)
}

// GetUser returns the session user, or nil for an anonymous or unreadable
// session
func (s *Store) GetUser(ctx context.Context, sessionID string) *User {
	data, err := s.redis.Get(ctx, userKey(sessionID)).Result()
	if err != nil {
		return nil
	}

	var user User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		// Corrupt record, treat as anonymous
		return nil
	}
	return &user
}

// SetUser persists the session user and broadcasts a session change
func (s *Store) SetUser(ctx context.Context, sessionID string, user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	if err := s.redis.Set(ctx, userKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist session user: %w", err)
	}

	s.publishSessionChanged(SessionChanged{SessionID: sessionID, LoggedIn: true})
	return nil
}

// GetCart returns the persisted cart, or an empty cart when the record is
// missing or unreadable
func (s *Store) GetCart(ctx context.Context, sessionID string) Cart {
	data, err := s.redis.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return Cart{}
	}

	var cart Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		// Corrupt record, recover with an empty cart
		return Cart{}
	}
	return cart
}

// SetCart replaces the persisted cart and broadcasts exactly one cart change
func (s *Store) SetCart(ctx context.Context, sessionID string, cart Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.redis.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	s.publishCartChanged(CartChanged{
		SessionID:     sessionID,
		ItemCount:     cart.ItemCount(),
		TotalQuantity: cart.TotalQuantity(),
	})
	return nil
}

// ClearCart drops the persisted cart and broadcasts an empty cart change
func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.publishCartChanged(CartChanged{SessionID: sessionID})
	return nil
}

// GetCoupon returns the active coupon code, or "" when none is set
func (s *Store) GetCoupon(ctx context.Context, sessionID string) string {
	code, err := s.redis.Get(ctx, couponKey(sessionID)).Result()
	if err != nil {
		return ""
	}
	return code
}

// SetCoupon activates a coupon code, replacing any previous one
func (s *Store) SetCoupon(ctx context.Context, sessionID, code string) error {
	if err := s.redis.Set(ctx, couponKey(sessionID), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to persist coupon: %w", err)
	}
	return nil
}

// ClearCoupon removes the active coupon
func (s *Store) ClearCoupon(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, couponKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear coupon: %w", err)
	}
	return nil
}

// CompleteCheckout drops the cart and coupon after a successful order and
// broadcasts the cart change followed by a session change, in that order
func (s *Store) CompleteCheckout(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, cartKey(sessionID), couponKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear checkout state: %w", err)
	}

	s.publishCartChanged(CartChanged{SessionID: sessionID})
	s.publishSessionChanged(SessionChanged{
		SessionID: sessionID,
		LoggedIn:  s.GetUser(ctx, sessionID) != nil,
	})
	return nil
}

// ClearSession removes the user, cart and coupon and broadcasts a session
// change
func (s *Store) ClearSession(ctx context.Context, sessionID string) error {
	err := s.redis.Del(ctx, userKey(sessionID), cartKey(sessionID), couponKey(sessionID)).Err()
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.publishSessionChanged(SessionChanged{SessionID: sessionID, LoggedIn: false})
	return nil
}
