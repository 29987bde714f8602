package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/macrotrack/macrotrack-console/internal/client"
	"github.com/macrotrack/macrotrack-console/internal/model"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestGoalsUpdateEmpty(t *testing.T) {
	rec := &recorder{}
	_, err := NewGoalsService(rec).Update(context.Background(), model.MacroGoalsRequest{})

	if err != ErrNoGoalFields {
		t.Errorf("Update() error = %v, want ErrNoGoalFields", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("Update() made calls %v, want none", rec.calls)
	}
}

func TestGoalsCreateIncomplete(t *testing.T) {
	rec := &recorder{}
	_, err := NewGoalsService(rec).Create(context.Background(), model.MacroGoalsRequest{TotalCalories: intPtr(2000)})

	if err != ErrIncompleteGoals {
		t.Errorf("Create() error = %v, want ErrIncompleteGoals", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("Create() made calls %v, want none", rec.calls)
	}
}

func TestGoalsRoundTrip(t *testing.T) {
	srv := newMockBackend(t)
	ctx := context.Background()

	tok, err := NewAuthService(client.New(srv.URL)).Signup(ctx, model.SignupRequest{Email: "goals@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	goals := NewGoalsService(client.New(srv.URL, client.WithToken(tok.AccessToken)))

	_, err = goals.Get(ctx)
	var se *client.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
		t.Fatalf("Get() before create error = %v, want 404", err)
	}

	created, err := goals.Create(ctx, model.MacroGoalsRequest{
		TotalCalories: intPtr(2200),
		ProteinPct:    floatPtr(30),
		CarbPct:       floatPtr(45),
		FatPct:        floatPtr(25),
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.TotalCalories != 2200 || created.UserID != tok.UserID {
		t.Errorf("Create() = %+v", created)
	}

	updated, err := goals.Update(ctx, model.MacroGoalsRequest{FatPct: floatPtr(20)})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.FatPct != 20 || updated.TotalCalories != 2200 {
		t.Errorf("Update() = %+v", updated)
	}

	got, err := goals.Get(ctx)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got != updated {
		t.Errorf("Get() = %+v, want %+v", got, updated)
	}
}
