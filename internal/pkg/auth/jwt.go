// internal/pkg/auth/jwt.go
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/your-org/storefront-bff/internal/config"
)

// Claims represents the claims carried by an auth service token
type Claims struct {
	UserID int64  `json:"idUsuario"`
	Email  string `json:"correo"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}

// TokenVerifier validates tokens minted by the auth microservice. The
// storefront never issues tokens itself; it shares the HMAC secret with the
// auth service and checks signature and expiry before trusting any claim.
type TokenVerifier struct {
	config *config.Config
}

// NewTokenVerifier creates a new token verifier
func NewTokenVerifier(cfg *config.Config) *TokenVerifier {
	return &TokenVerifier{
		config: cfg,
	}
}

// Verify validates and parses an auth service token
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.config.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
