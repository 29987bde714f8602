package console

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/macrotrack/macrotrack-console/internal/middleware"
)

// Action routes allow a short burst of clicks per visitor, then one per second.
const (
	actionRPS   = 1
	actionBurst = 5
)

// Handler serves the console page and its actions.
type Handler struct {
	panel      *Panel
	backendURL string
}

// NewHandler creates a new Handler. backendURL is only shown to the user.
func NewHandler(panel *Panel, backendURL string) *Handler {
	return &Handler{panel: panel, backendURL: backendURL}
}

// Routes returns the console router. ctx bounds the rate limiter's
// background sweeper.
func (h *Handler) Routes(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/", h.HandlePage)
	r.Get("/api/status", h.HandleStatus)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, actionRPS, actionBurst))
		r.Post("/actions/health", h.HandleHealthCheck)
		r.Post("/actions/sendgrid", h.HandleEmailTest)
	})

	return r
}

// HandlePage handles GET / requests.
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{Snapshot: h.panel.Snapshot(), BackendURL: h.backendURL}
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("render page", "error", err)
	}
}

// HandleStatus handles GET /api/status requests.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.panel.Snapshot())
}

// HandleHealthCheck handles POST /actions/health requests.
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.panel.RunHealthCheck(r.Context())
	h.respond(w, r)
}

// HandleEmailTest handles POST /actions/sendgrid requests.
func (h *Handler) HandleEmailTest(w http.ResponseWriter, r *http.Request) {
	h.panel.RunEmailTest(r.Context())
	h.respond(w, r)
}

// respond sends the snapshot to API callers and redirects browsers back to the page.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, h.panel.Snapshot())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
