// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/pricing"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/infrastructure/services"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-bff/internal/pkg/auth"
)

// allowedEmailDomains are the address domains accepted at login and
// registration
var allowedEmailDomains = []string{"@duoc.cl", "@profesor.duoc.cl", "@gmail.com"}

// AuthHandler handles login, registration and session endpoints
type AuthHandler struct {
	authClient *services.AuthClient
	store      *session.Store
	verifier   *auth.TokenVerifier
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authClient *services.AuthClient, store *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
		store:      store,
		verifier:   auth.NewTokenVerifier(cfg),
		config:     cfg,
	}
}

// LoginRequest is the login form payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest is the registration form payload
type RegisterRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email,max=100"`
	Password        string `json:"password" binding:"required,min=4"`
	PasswordConfirm string `json:"password_confirm" binding:"required,eqfield=Password"`
	BirthDate       string `json:"birth_date,omitempty"`
	Phone           string `json:"phone,omitempty"`
	RegionID        int    `json:"region_id,omitempty"`
	CommuneID       int    `json:"commune_id,omitempty"`
	SignupCode      string `json:"signup_code,omitempty"`
}

// userResponse is the session user shape exposed to the frontend. The auth
// token stays server-side.
type userResponse struct {
	UserID         int64  `json:"user_id"`
	DisplayName    string `json:"display_name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	BenefitPercent int    `json:"benefit_percent"`
}

func toUserResponse(user *session.User) userResponse {
	return userResponse{
		UserID:         user.UserID,
		DisplayName:    user.DisplayName,
		Email:          user.Email,
		Role:           user.Role,
		BenefitPercent: user.BenefitPercent,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !isEmailDomainAllowed(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email must belong to an accepted domain",
		})
		return
	}

	resp, err := h.authClient.Login(c.Request.Context(), &services.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	// The three services share an HMAC secret; never trust the token's
	// claims without checking signature and expiry first
	if _, err := h.verifier.Verify(resp.Token); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Auth service returned an invalid token",
		})
		return
	}

	user := &session.User{
		UserID:         resp.UserID,
		DisplayName:    resp.Name,
		Email:          req.Email,
		Role:           resp.Role,
		AuthToken:      resp.Token,
		BenefitPercent: pricing.GeneralDiscountPercent(req.Email, time.Time{}, "", time.Now()),
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.store.SetUser(c.Request.Context(), sessionID, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to persist session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    toUserResponse(user),
	})
}

// Register handles POST /auth/register. Mirroring the storefront flow, a
// successful registration immediately logs the new account in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !isEmailDomainAllowed(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email must belong to an accepted domain",
		})
		return
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid birth date, expected YYYY-MM-DD",
			})
			return
		}
		birthDate = parsed
	}

	err := h.authClient.Register(c.Request.Context(), &services.RegisterRequest{
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      "CLIENTE",
		Phone:     req.Phone,
		RegionID:  req.RegionID,
		CommuneID: req.CommuneID,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	// Auto-login with the freshly created credentials
	resp, err := h.authClient.Login(c.Request.Context(), &services.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeRemoteError(c, err)
		return
	}

	if _, err := h.verifier.Verify(resp.Token); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Auth service returned an invalid token",
		})
		return
	}

	user := &session.User{
		UserID:         resp.UserID,
		DisplayName:    resp.Name,
		Email:          req.Email,
		Role:           resp.Role,
		AuthToken:      resp.Token,
		BenefitPercent: pricing.GeneralDiscountPercent(req.Email, birthDate, req.SignupCode, time.Now()),
	}

	sessionID := middleware.GetSessionID(c)
	if err := h.store.SetUser(c.Request.Context(), sessionID, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to persist session",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    toUserResponse(user),
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if err := h.store.ClearSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    toUserResponse(user),
	})
}

// isEmailDomainAllowed checks the address against the accepted domains
func isEmailDomainAllowed(email string) bool {
	lowered := strings.ToLower(email)
	for _, domain := range allowedEmailDomains {
		if strings.HasSuffix(lowered, domain) {
			return true
		}
	}
	return false
}
