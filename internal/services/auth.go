package services

import (
	"context"
	"fmt"

	"github.com/ahhzhzbbb/projectI-imdb-clone/internal/models"
)

// AuthService wraps the backend's authentication endpoints.
type AuthService struct {
	client *Client
}

// NewAuthService creates an AuthService backed by the given client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
}

// loginResponse mirrors the backend's login envelope; only the token matters
// to the client, identity comes from the who-am-I call afterwards.
type loginResponse struct {
	JWTToken string `json:"jwtToken"`
}

// userInfoResponse mirrors GET /auth/user.
type userInfoResponse struct {
	UserID      int64    `json:"userId"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
	PhoneNumber string   `json:"phoneNumber"`
}

// Login exchanges credentials for a bearer token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	var resp loginResponse
	if err := s.client.post(ctx, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	if resp.JWTToken == "" {
		return "", fmt.Errorf("login response did not include a token")
	}
	return resp.JWTToken, nil
}

// Signup registers a new account. The backend returns no token; callers chain
// into Login on success.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) error {
	return s.client.post(ctx, "/auth/signup", req, nil)
}

// CurrentUser resolves the stored credential into an identity via the
// who-am-I endpoint.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	var resp userInfoResponse
	if err := s.client.get(ctx, "/auth/user", &resp); err != nil {
		return nil, err
	}

	return &models.User{
		UserID:      resp.UserID,
		Username:    resp.Username,
		PhoneNumber: resp.PhoneNumber,
		Role:        models.ParseRole(resp.Roles),
	}, nil
}
