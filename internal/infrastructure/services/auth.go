// internal/infrastructure/services/auth.go
package services

import (
	"context"
	"net/http"
	"time"
)

// AuthClient talks to the auth microservice
type AuthClient struct {
	*apiClient
}

// NewAuthClient creates a new auth service client
func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		apiClient: newAPIClient("auth", baseURL, timeout),
	}
}

// LoginRequest is the credentials payload the auth service expects
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
}

// LoginResponse is the auth service answer on successful login
type LoginResponse struct {
	UserID int64  `json:"idUsuario"`
	Name   string `json:"nombre"`
	Role   string `json:"rol"`
	Token  string `json:"token"`
}

// RegisterRequest is the profile payload for account creation
type RegisterRequest struct {
	FullName  string `json:"nombreCompleto"`
	Email     string `json:"correo"`
	Password  string `json:"contrasena"`
	Role      string `json:"rol"`
	Phone     string `json:"telefono,omitempty"`
	RegionID  int    `json:"idRegion,omitempty"`
	CommuneID int    `json:"idComuna,omitempty"`
	BirthDate string `json:"fechaNacimiento,omitempty"`
}

// Login authenticates a user against the auth service
func (c *AuthClient) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.callJSON(ctx, http.MethodPost, "/login", req, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account on the auth service
func (c *AuthClient) Register(ctx context.Context, req *RegisterRequest) error {
	_, err := c.call(ctx, http.MethodPost, "/register", req, "")
	return err
}
