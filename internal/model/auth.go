package model

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful signup or login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// UserResponse represents the current user as reported by the backend.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PasswordResetRequest asks the backend to send a reset link to Email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// APIError is the error body returned by the backend on non-2xx responses.
type APIError struct {
	Detail string `json:"detail"`
}
