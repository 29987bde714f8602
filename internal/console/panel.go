// Package console serves a small web page that exercises the backend's
// health check and email test endpoints and shows the raw results.
package console

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/macrotrack/macrotrack-console/internal/model"
)

// Checker runs the two backend checks. *service.AuthService satisfies it.
type Checker interface {
	TestConnection(ctx context.Context) (model.Payload, error)
	TestSendGrid(ctx context.Context) (model.Payload, error)
}

// Status is the rendered outcome of one action.
type Status string

// Healthy reports whether the text mentions "healthy". This is a textual
// check on the rendered line, not a parse of the backend payload.
func (s Status) Healthy() bool {
	return strings.Contains(string(s), "healthy")
}

// Successful reports whether the text mentions "successful".
func (s Status) Successful() bool {
	return strings.Contains(string(s), "successful")
}

// Snapshot is a copy of the panel state.
type Snapshot struct {
	Busy           bool   `json:"busy"`
	HealthStatus   Status `json:"health_status"`
	SendGridStatus Status `json:"sendgrid_status"`
}

// Panel holds the console state: one busy flag shared by both actions and
// a status slot per action. The mutex only guards memory; it does not stop
// the two actions from running at the same time.
type Panel struct {
	checker Checker

	mu       sync.Mutex
	busy     bool
	health   Status
	sendGrid Status
}

// NewPanel creates an idle Panel with empty slots.
func NewPanel(checker Checker) *Panel {
	return &Panel{checker: checker}
}

// RunHealthCheck calls the health endpoint and records the outcome in the
// health slot.
func (p *Panel) RunHealthCheck(ctx context.Context) Status {
	p.setBusy(true)
	defer p.setBusy(false)

	var status Status
	result, err := p.checker.TestConnection(ctx)
	if err != nil {
		slog.Warn("health check failed", "error", err)
		status = Status("Backend connection failed: " + err.Error())
	} else {
		status = Status("Backend is healthy: " + result.String())
	}

	p.mu.Lock()
	p.health = status
	p.mu.Unlock()
	return status
}

// RunEmailTest calls the email test endpoint and records the outcome in
// the SendGrid slot.
func (p *Panel) RunEmailTest(ctx context.Context) Status {
	p.setBusy(true)
	defer p.setBusy(false)

	var status Status
	result, err := p.checker.TestSendGrid(ctx)
	if err != nil {
		slog.Warn("sendgrid test failed", "error", err)
		status = Status("SendGrid test failed: " + err.Error())
	} else {
		status = Status("SendGrid test successful: " + result.String())
	}

	p.mu.Lock()
	p.sendGrid = status
	p.mu.Unlock()
	return status
}

// Snapshot returns the current state.
func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Busy:           p.busy,
		HealthStatus:   p.health,
		SendGridStatus: p.sendGrid,
	}
}

func (p *Panel) setBusy(v bool) {
	p.mu.Lock()
	p.busy = v
	p.mu.Unlock()
}
