// internal/domain/pricing/pricing_test.go
package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/domain/session"
)

func TestComputeTotalsWithCoupon(t *testing.T) {
	cart := session.Cart{
		{ProductID: 1, Name: "Taladro", UnitPrice: 4000, Quantity: 2},
		{ProductID: 2, Name: "Martillo", UnitPrice: 2000, Quantity: 1},
	}

	totals := ComputeTotals(cart, "FELICES50")

	assert.Equal(t, int64(10000), totals.Subtotal)
	assert.Equal(t, int64(1000), totals.Discount)
	assert.Equal(t, int64(9000), totals.Total)
}

func TestComputeTotalsUnknownCoupon(t *testing.T) {
	cart := session.Cart{
		{ProductID: 1, UnitPrice: 5000, Quantity: 1},
	}

	totals := ComputeTotals(cart, "NOPE")

	assert.Equal(t, int64(5000), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(5000), totals.Total)
}

func TestComputeTotalsRoundsHalfUp(t *testing.T) {
	// subtotal 10005 -> discount 1000.5 -> total rounds to 9005 (9004.5 up)
	cart := session.Cart{
		{ProductID: 1, UnitPrice: 10005, Quantity: 1},
	}

	totals := ComputeTotals(cart, "FELICES50")

	assert.Equal(t, int64(10005), totals.Subtotal)
	assert.Equal(t, int64(9005), totals.Total)
	assert.Equal(t, int64(1000), totals.Discount)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(session.Cart{}, "FELICES50")

	assert.Equal(t, Totals{}, totals)
}

func TestComputeTotalsReconcile(t *testing.T) {
	carts := []session.Cart{
		{{ProductID: 1, UnitPrice: 1, Quantity: 1}},
		{{ProductID: 1, UnitPrice: 333, Quantity: 3}},
		{{ProductID: 1, UnitPrice: 19990, Quantity: 7}, {ProductID: 2, UnitPrice: 5, Quantity: 1}},
	}

	for _, cart := range carts {
		totals := ComputeTotals(cart, CouponCode)
		assert.Equal(t, totals.Subtotal, totals.Discount+totals.Total)
		assert.GreaterOrEqual(t, totals.Total, int64(0))
		assert.LessOrEqual(t, totals.Total, totals.Subtotal)
	}
}

func TestNormalizeCoupon(t *testing.T) {
	assert.Equal(t, "FELICES50", NormalizeCoupon("  felices50 "))
	assert.Equal(t, "FELICES50", NormalizeCoupon("Felices50"))
	assert.Equal(t, "", NormalizeCoupon("   "))
}

func TestValidateCoupon(t *testing.T) {
	code, err := ValidateCoupon(" felices50 ")
	require.NoError(t, err)
	assert.Equal(t, CouponCode, code)

	_, err = ValidateCoupon("DESCUENTO20")
	assert.ErrorIs(t, err, ErrUnknownCoupon)

	_, err = ValidateCoupon("")
	assert.ErrorIs(t, err, ErrUnknownCoupon)
}

func TestGeneralDiscountPercent(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		email      string
		birthDate  time.Time
		signupCode string
		expected   int
	}{
		{
			name:      "senior customer",
			email:     "cliente@gmail.com",
			birthDate: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  50,
		},
		{
			name:      "turns fifty today",
			email:     "cliente@gmail.com",
			birthDate: time.Date(1975, 6, 15, 0, 0, 0, 0, time.UTC),
			expected:  50,
		},
		{
			name:      "forty nine years and counting",
			email:     "cliente@gmail.com",
			birthDate: time.Date(1975, 6, 16, 0, 0, 0, 0, time.UTC),
			expected:  0,
		},
		{
			name:     "institutional student email",
			email:    "alumno@duoc.cl",
			expected: 10,
		},
		{
			name:     "institutional professor email",
			email:    "docente@profesor.duoc.cl",
			expected: 10,
		},
		{
			name:       "signup promo code",
			email:      "cliente@gmail.com",
			signupCode: "felices50",
			expected:   10,
		},
		{
			name:       "benefits do not stack, senior wins",
			email:      "alumno@duoc.cl",
			birthDate:  time.Date(1960, 3, 10, 0, 0, 0, 0, time.UTC),
			signupCode: "FELICES50",
			expected:   50,
		},
		{
			name:     "no benefit",
			email:    "cliente@gmail.com",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneralDiscountPercent(tt.email, tt.birthDate, tt.signupCode, now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDiscountedUnitPrice(t *testing.T) {
	assert.Equal(t, int64(9990), DiscountedUnitPrice(19980, 50))
	assert.Equal(t, int64(17991), DiscountedUnitPrice(19990, 10))
	assert.Equal(t, int64(19990), DiscountedUnitPrice(19990, 0))
	assert.Equal(t, int64(5000), DiscountedUnitPrice(5000, -10))
	// 9995 at 50% is 4997.5, rounds up
	assert.Equal(t, int64(4998), DiscountedUnitPrice(9995, 50))
}

func TestAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 50, Age(time.Date(1975, 6, 15, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 49, Age(time.Date(1975, 6, 16, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 49, Age(time.Date(1975, 12, 1, 0, 0, 0, 0, time.UTC), now))
}
