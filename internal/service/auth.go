package service

import (
	"context"

	"github.com/macrotrack/macrotrack-console/internal/model"
)

// Requester issues JSON requests against the backend. *client.Client satisfies it.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
}

// AuthService exposes the backend's health, authentication and email test
// endpoints. It holds no state besides the requester; errors from the
// requester are returned unchanged.
type AuthService struct {
	api Requester
}

// NewAuthService creates a new AuthService.
func NewAuthService(api Requester) *AuthService {
	return &AuthService{api: api}
}

// TestConnection calls GET /health.
func (s *AuthService) TestConnection(ctx context.Context) (model.Payload, error) {
	var out model.Payload
	if err := s.api.Get(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Signup creates a new account.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.TokenResponse, error) {
	var out model.TokenResponse
	if err := s.api.Post(ctx, "/auth/signup", req, &out); err != nil {
		return model.TokenResponse{}, err
	}
	return out, nil
}

// Login authenticates an existing account.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	var out model.TokenResponse
	if err := s.api.Post(ctx, "/auth/login", req, &out); err != nil {
		return model.TokenResponse{}, err
	}
	return out, nil
}

// GetCurrentUser calls GET /auth/me. The requester decides whether a
// bearer token is attached.
func (s *AuthService) GetCurrentUser(ctx context.Context) (model.UserResponse, error) {
	var out model.UserResponse
	if err := s.api.Get(ctx, "/auth/me", &out); err != nil {
		return model.UserResponse{}, err
	}
	return out, nil
}

// RequestPasswordReset asks the backend to email a reset link.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (model.Payload, error) {
	var out model.Payload
	if err := s.api.Post(ctx, "/auth/password-reset", model.PasswordResetRequest{Email: email}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TestSendGrid calls GET /emails/test-sendgrid, which makes the backend
// send a test email.
func (s *AuthService) TestSendGrid(ctx context.Context) (model.Payload, error) {
	var out model.Payload
	if err := s.api.Get(ctx, "/emails/test-sendgrid", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TestTable calls GET /test-table, which reads the backend's user_profiles table.
func (s *AuthService) TestTable(ctx context.Context) (model.Payload, error) {
	var out model.Payload
	if err := s.api.Get(ctx, "/test-table", &out); err != nil {
		return nil, err
	}
	return out, nil
}
