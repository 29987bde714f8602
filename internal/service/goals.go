package service

import (
	"context"
	"errors"

	"github.com/macrotrack/macrotrack-console/internal/model"
)

var (
	ErrNoGoalFields    = errors.New("no fields provided for update")
	ErrIncompleteGoals = errors.New("total_calories, protein_pct, carb_pct and fat_pct are required")
)

const goalsPath = "/macro-goals/"

// GoalsService manages the current user's macro goals.
type GoalsService struct {
	api Requester
}

// NewGoalsService creates a new GoalsService.
func NewGoalsService(api Requester) *GoalsService {
	return &GoalsService{api: api}
}

// Get returns the current user's macro goals.
func (s *GoalsService) Get(ctx context.Context) (model.MacroGoalsResponse, error) {
	var out model.MacroGoalsResponse
	if err := s.api.Get(ctx, goalsPath, &out); err != nil {
		return model.MacroGoalsResponse{}, err
	}
	return out, nil
}

// Create creates or replaces the current user's macro goals.
func (s *GoalsService) Create(ctx context.Context, req model.MacroGoalsRequest) (model.MacroGoalsResponse, error) {
	if !req.Complete() {
		return model.MacroGoalsResponse{}, ErrIncompleteGoals
	}

	var out model.MacroGoalsResponse
	if err := s.api.Post(ctx, goalsPath, req, &out); err != nil {
		return model.MacroGoalsResponse{}, err
	}
	return out, nil
}

// Update changes only the fields set in req.
func (s *GoalsService) Update(ctx context.Context, req model.MacroGoalsRequest) (model.MacroGoalsResponse, error) {
	if req.Empty() {
		return model.MacroGoalsResponse{}, ErrNoGoalFields
	}

	var out model.MacroGoalsResponse
	if err := s.api.Put(ctx, goalsPath, req, &out); err != nil {
		return model.MacroGoalsResponse{}, err
	}
	return out, nil
}
