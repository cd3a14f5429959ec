// internal/domain/pricing/pricing.go
package pricing

import (
	"errors"
	"math"
	"strings"

	"github.com/your-org/storefront-bff/internal/domain/session"
)

// CouponCode is the single recognized cart coupon. It grants a flat
// percentage discount on the cart subtotal.
const CouponCode = "FELICES50"

// couponDiscountRate is the fraction of the subtotal the coupon removes
const couponDiscountRate = 0.10

// ErrUnknownCoupon signals a coupon code that is not recognized
var ErrUnknownCoupon = errors.New("unknown coupon code")

// Totals is the priced summary of a cart. Amounts are whole currency units;
// Total = round(Subtotal - Discount) and Discount = Subtotal - Total, so the
// three always reconcile.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Total    int64 `json:"total"`
}

// NormalizeCoupon trims and upper-cases a user-entered coupon code
func NormalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCoupon normalizes a coupon code and rejects unrecognized ones
func ValidateCoupon(code string) (string, error) {
	normalized := NormalizeCoupon(code)
	if normalized != CouponCode {
		return "", ErrUnknownCoupon
	}
	return normalized, nil
}

// ComputeTotals prices a cart under the given coupon code. An empty cart
// yields all zeros; an unrecognized coupon yields no discount.
func ComputeTotals(cart session.Cart, couponCode string) Totals {
	var subtotal int64
	for _, item := range cart {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}

	total := subtotal
	if NormalizeCoupon(couponCode) == CouponCode {
		discount := float64(subtotal) * couponDiscountRate
		// Round half-up to stay on whole currency units
		total = int64(math.Round(float64(subtotal) - discount))
	}

	return Totals{
		Subtotal: subtotal,
		Discount: subtotal - total,
		Total:    total,
	}
}
