// internal/interfaces/http/handlers/auth_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-bff/internal/pkg/auth"
)

const testJWTSecret = "test-secret-key-that-is-long-enough-for-hmac"

func authTestConfig() *config.Config {
	cfg := testConfig()
	cfg.JWT.Secret = testJWTSecret
	return cfg
}

func signTestToken(t *testing.T, secret string, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(t *testing.T, authHandler http.HandlerFunc) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authServer := httptest.NewServer(authHandler)
	t.Cleanup(authServer.Close)

	cfg := authTestConfig()
	store := session.NewStore(newFakeRedis(), time.Hour)
	handler := NewAuthHandler(services.NewAuthClient(authServer.URL, 5*time.Second), store, cfg)

	router := gin.New()
	router.Use(middleware.Session(cfg))

	group := router.Group("/auth")
	{
		group.POST("/login", handler.Login)
		group.POST("/register", handler.Register)
		group.POST("/logout", handler.Logout)
		group.GET("/me", middleware.RequireUser(store), handler.Me)
	}

	return router, store
}

func TestLoginSuccess(t *testing.T) {
	var token string
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		token = signTestToken(t, testJWTSecret, 7)
		json.NewEncoder(w).Encode(services.LoginResponse{
			UserID: 7,
			Name:   "Ana Soto",
			Role:   "CLIENTE",
			Token:  token,
		})
	})
	cookie := &http.Cookie{Name: "storefront_session", Value: "s1"}

	w := doJSON(router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ana@gmail.com",
		Password: "secret123",
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Soto")
	// The token stays server-side
	assert.NotContains(t, w.Body.String(), token)

	user := store.GetUser(context.Background(), "s1")
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, token, user.AuthToken)
	assert.Equal(t, 0, user.BenefitPercent)
}

func TestLoginInstitutionalEmailGetsBenefit(t *testing.T) {
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(services.LoginResponse{
			UserID: 8,
			Name:   "Pedro Rojas",
			Role:   "CLIENTE",
			Token:  signTestToken(t, testJWTSecret, 8),
		})
	})
	cookie := &http.Cookie{Name: "storefront_session", Value: "s1"}

	w := doJSON(router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "pedro@duoc.cl",
		Password: "secret123",
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	user := store.GetUser(context.Background(), "s1")
	require.NotNil(t, user)
	assert.Equal(t, 10, user.BenefitPercent)
}

func TestLoginRejectsUnknownEmailDomain(t *testing.T) {
	called := false
	router, _ := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := doJSON(router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ana@hotmail.com",
		Password: "secret123",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestLoginBadCredentialsPassThrough(t *testing.T) {
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Credenciales invalidas"})
	})
	cookie := &http.Cookie{Name: "storefront_session", Value: "s1"}

	w := doJSON(router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ana@gmail.com",
		Password: "wrongpw",
	}, cookie)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Credenciales invalidas")
	assert.Nil(t, store.GetUser(context.Background(), "s1"))
}

func TestLoginRejectsBadlySignedToken(t *testing.T) {
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(services.LoginResponse{
			UserID: 7,
			Token:  signTestToken(t, "some-other-secret-also-long-enough!!", 7),
		})
	})
	cookie := &http.Cookie{Name: "storefront_session", Value: "s1"}

	w := doJSON(router, http.MethodPost, "/auth/login", LoginRequest{
		Email:    "ana@gmail.com",
		Password: "secret123",
	}, cookie)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Nil(t, store.GetUser(context.Background(), "s1"))
}

func TestRegisterAutoLoginWithSeniorBenefit(t *testing.T) {
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/register":
			var req services.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "CLIENTE", req.Role)
			assert.Equal(t, "1960-03-10", req.BirthDate)
			w.WriteHeader(http.StatusCreated)
		case "/login":
			json.NewEncoder(w).Encode(services.LoginResponse{
				UserID: 9,
				Name:   "Rosa Diaz",
				Role:   "CLIENTE",
				Token:  signTestToken(t, testJWTSecret, 9),
			})
		}
	})
	cookie := &http.Cookie{Name: "storefront_session", Value: "s1"}

	w := doJSON(router, http.MethodPost, "/auth/register", RegisterRequest{
		FullName:        "Rosa Diaz",
		Email:           "rosa@gmail.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		BirthDate:       "1960-03-10",
	}, cookie)

	require.Equal(t, http.StatusCreated, w.Code)

	user := store.GetUser(context.Background(), "s1")
	require.NotNil(t, user)
	assert.Equal(t, 50, user.BenefitPercent)
}

func TestRegisterRejectsMismatchedPasswords(t *testing.T) {
	called := false
	router, _ := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := doJSON(router, http.MethodPost, "/auth/register", RegisterRequest{
		FullName:        "Rosa Diaz",
		Email:           "rosa@gmail.com",
		Password:        "secret123",
		PasswordConfirm: "different",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestLogoutClearsSession(t *testing.T) {
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()
	cookie := loginSession(t, store, &session.User{UserID: 7})
	require.NoError(t, store.SetCart(ctx, "s1", session.Cart{{ProductID: 1, UnitPrice: 100, Quantity: 1}}))

	w := doJSON(router, http.MethodPost, "/auth/logout", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, store.GetUser(ctx, "s1"))
	assert.Empty(t, store.GetCart(ctx, "s1"))
}

func TestMe(t *testing.T) {
	router, store := newAuthRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	cookie := loginSession(t, store, &session.User{UserID: 7, DisplayName: "Ana Soto", BenefitPercent: 10})

	w := doJSON(router, http.MethodGet, "/auth/me", nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Soto")
	assert.Contains(t, w.Body.String(), `"benefit_percent":10`)

	w = doJSON(router, http.MethodGet, "/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
