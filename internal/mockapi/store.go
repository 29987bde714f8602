package mockapi

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/macrotrack/macrotrack-console/internal/model"
)

var (
	ErrEmailTaken    = errors.New("email exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrGoalsNotFound = errors.New("macro goals not found")
)

type user struct {
	ID        string
	Email     string
	Hash      string
	CreatedAt time.Time
}

// Email is a message the mock recorded instead of sending.
type Email struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	SentAt  time.Time `json:"sent_at"`
}

type store struct {
	mu     sync.Mutex
	users  map[string]*user // by email
	goals  map[string]model.MacroGoalsResponse
	outbox []Email
}

func newStore() *store {
	return &store{
		users: make(map[string]*user),
		goals: make(map[string]model.MacroGoalsResponse),
	}
}

func (s *store) createUser(email, hash string) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, ErrEmailTaken
	}
	u := &user{
		ID:        uuid.NewString(),
		Email:     email,
		Hash:      hash,
		CreatedAt: time.Now().UTC(),
	}
	s.users[email] = u
	return u, nil
}

func (s *store) userByEmail(email string) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *store) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *store) recordEmail(to, subject string) Email {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Email{To: to, Subject: subject, SentAt: time.Now().UTC()}
	s.outbox = append(s.outbox, e)
	return e
}

func (s *store) sentEmails() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Email(nil), s.outbox...)
}

func (s *store) getGoals(userID string) (model.MacroGoalsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.goals[userID]
	if !ok {
		return model.MacroGoalsResponse{}, ErrGoalsNotFound
	}
	return g, nil
}

// putGoals creates goals from a complete request or merges a partial one
// into existing goals. replace selects create semantics.
func (s *store) putGoals(userID string, req model.MacroGoalsRequest, replace bool) (model.MacroGoalsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	g, exists := s.goals[userID]
	if !exists {
		if !replace {
			return model.MacroGoalsResponse{}, ErrGoalsNotFound
		}
		g = model.MacroGoalsResponse{UserID: userID, CreatedAt: now}
	}

	if req.TotalCalories != nil {
		g.TotalCalories = *req.TotalCalories
	}
	if req.ProteinPct != nil {
		g.ProteinPct = *req.ProteinPct
	}
	if req.CarbPct != nil {
		g.CarbPct = *req.CarbPct
	}
	if req.FatPct != nil {
		g.FatPct = *req.FatPct
	}
	g.UpdatedAt = now

	s.goals[userID] = g
	return g, nil
}
