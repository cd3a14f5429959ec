// internal/domain/pricing/benefits.go
package pricing

import (
	"math"
	"strings"
	"time"
)

// Profile-level general discounts granted at registration. The senior
// benefit wins over the other two; they do not stack.
const (
	seniorAge            = 50
	seniorPercent        = 50
	institutionalPercent = 10
	signupCodePercent    = 10
)

// institutionalDomains are the email domains entitled to the lifetime
// institutional discount
var institutionalDomains = []string{"@duoc.cl", "@profesor.duoc.cl"}

// GeneralDiscountPercent evaluates the profile-level discount a customer
// earns when registering: 50% from the given age on, 10% for institutional
// email addresses, 10% for redeeming the promo code at signup.
func GeneralDiscountPercent(email string, birthDate time.Time, signupCode string, now time.Time) int {
	if !birthDate.IsZero() && Age(birthDate, now) >= seniorAge {
		return seniorPercent
	}

	lowered := strings.ToLower(email)
	for _, domain := range institutionalDomains {
		if strings.HasSuffix(lowered, domain) {
			return institutionalPercent
		}
	}

	if NormalizeCoupon(signupCode) == CouponCode {
		return signupCodePercent
	}

	return 0
}

// DiscountedUnitPrice applies a percentage discount to a unit price,
// rounded half-up to whole currency units
func DiscountedUnitPrice(price int64, percent int) int64 {
	if percent <= 0 {
		return price
	}
	return int64(math.Round(float64(price) * (1 - float64(percent)/100)))
}

// Age returns full years elapsed between birthDate and now
func Age(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	return years
}
