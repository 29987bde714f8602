// Package mockapi is an in-memory stand-in for the macrotrack backend. It
// honours the same REST contract as the real service, issues real JWTs and
// records emails instead of sending them.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/macrotrack/macrotrack-console/internal/crypto"
	"github.com/macrotrack/macrotrack-console/internal/middleware"
	"github.com/macrotrack/macrotrack-console/internal/model"
)

const (
	maxBodyBytes     = 1 << 20 // 1MB
	defaultTestEmail = "test@macrotrack.local"
)

// ErrEmailDelivery is returned for every delivery when Options.FailEmail is set.
var ErrEmailDelivery = errors.New("email delivery failed")

// Options configures a Server.
type Options struct {
	JWTSecret string
	JWTExpiry time.Duration
	// TestRecipient receives the message sent by /emails/test-sendgrid.
	TestRecipient string
	// FailEmail makes every email delivery fail, to exercise error paths.
	FailEmail bool
	// HashParams overrides the Argon2id parameters (zero means defaults).
	HashParams crypto.HashParams
}

// Server is the mock backend.
type Server struct {
	opts   Options
	store  *store
	hasher *crypto.Hasher
}

// New creates a Server.
func New(opts Options) *Server {
	if opts.JWTExpiry == 0 {
		opts.JWTExpiry = 30 * time.Minute
	}
	if opts.TestRecipient == "" {
		opts.TestRecipient = defaultTestEmail
	}
	return &Server{
		opts:   opts,
		store:  newStore(),
		hasher: crypto.NewHasher(opts.HashParams),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/test-table", s.handleTestTable)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Post("/password-reset", s.handlePasswordReset)
		r.With(middleware.JWTAuth(s.opts.JWTSecret)).Get("/me", s.handleMe)
	})

	r.Get("/emails/test-sendgrid", s.handleTestSendGrid)

	r.Route("/macro-goals", func(r chi.Router) {
		r.Use(middleware.JWTAuth(s.opts.JWTSecret))
		r.Get("/", s.handleGetGoals)
		r.Post("/", s.handleCreateGoals)
		r.Put("/", s.handleUpdateGoals)
	})

	return r
}

// SentEmails returns the emails recorded so far.
func (s *Server) SentEmails() []Email {
	return s.store.sentEmails()
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "macrotrack mock API is running",
		"status":  "success",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Server is running",
	})
}

func (s *Server) handleTestTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Successfully connected to user_profiles table!",
		"data":    []any{},
		"count":   s.store.userCount(),
	})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validEmail(req.Email) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("value is not a valid email address"))
		return
	}
	if req.Password == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("password is required"))
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("hash password", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	u, err := s.store.createUser(req.Email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if _, err := s.deliver(r.Context(), u.Email, "Welcome to Macro Tracking App!"); err != nil {
		slog.Warn("welcome email not sent", "email", u.Email, "error", err)
	}

	s.writeToken(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := s.store.userByEmail(req.Email)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid email or password"))
		return
	}

	ok, err := s.hasher.Verify(req.Password, u.Hash)
	if err != nil {
		slog.Error("verify password", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid email or password"))
		return
	}

	s.writeToken(w, http.StatusOK, u)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	writeJSON(w, http.StatusOK, model.UserResponse{
		ID:      claims.UserID,
		Email:   claims.Email,
		Message: "Authenticated user",
	})
}

func (s *Server) handlePasswordReset(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordResetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validEmail(req.Email) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("value is not a valid email address"))
		return
	}

	// Unknown addresses get the same answer so accounts cannot be enumerated.
	if _, err := s.store.userByEmail(req.Email); err == nil {
		if _, err := s.deliver(r.Context(), req.Email, "Password Reset - Macro Tracking App"); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to send password reset email: "+err.Error()))
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "If an account exists for that email, a reset link has been sent",
	})
}

func (s *Server) handleTestSendGrid(w http.ResponseWriter, r *http.Request) {
	to := s.opts.TestRecipient
	sent, err := s.deliver(r.Context(), to, "SendGrid Connection Test - Macro Tracking App")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("SendGrid connection test failed: "+err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "SendGrid connection test successful! Email sent to " + to,
		"details": sent,
	})
}

func (s *Server) handleGetGoals(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	g, err := s.store.getGoals(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("No macro goals found for this user"))
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleCreateGoals(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req model.MacroGoalsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Complete() {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("total_calories, protein_pct, carb_pct and fat_pct are required"))
		return
	}

	g, err := s.store.putGoals(claims.UserID, req, true)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to create macro goals"))
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req model.MacroGoalsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Empty() {
		writeJSON(w, http.StatusBadRequest, errorResponse("No fields provided for update"))
		return
	}

	g, err := s.store.putGoals(claims.UserID, req, false)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse("No macro goals found for this user"))
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) writeToken(w http.ResponseWriter, status int, u *user) {
	token, err := crypto.GenerateToken(u.ID, u.Email, s.opts.JWTSecret, s.opts.JWTExpiry)
	if err != nil {
		slog.Error("generate token", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, status, model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      u.ID,
		Email:       u.Email,
	})
}

// deliver records an email in the outbox, or fails when FailEmail is set.
func (s *Server) deliver(ctx context.Context, to, subject string) (Email, error) {
	if err := ctx.Err(); err != nil {
		return Email{}, err
	}
	if s.opts.FailEmail {
		return Email{}, ErrEmailDelivery
	}
	e := s.store.recordEmail(to, subject)
	slog.Info("email recorded", "to", to, "subject", subject)
	return e, nil
}

func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.APIError {
	return model.APIError{Detail: msg}
}
