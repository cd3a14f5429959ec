// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
)

const testSecret = "test-secret-key-that-is-long-enough-for-hmac"

func newTestVerifier() *TokenVerifier {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	return NewTokenVerifier(cfg)
}

func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	verifier := newTestVerifier()

	signed := signToken(t, testSecret, &Claims{
		UserID: 7,
		Email:  "ana@gmail.com",
		Role:   "CLIENTE",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ana@gmail.com", claims.Email)
	assert.Equal(t, "CLIENTE", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	verifier := newTestVerifier()

	signed := signToken(t, "some-other-secret-also-long-enough!!", &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	verifier := newTestVerifier()

	signed := signToken(t, testSecret, &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := newTestVerifier()

	_, err := verifier.Verify("not-a-token")
	assert.Error(t, err)
}
