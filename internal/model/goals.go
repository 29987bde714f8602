package model

// MacroGoalsRequest creates or partially updates a user's macro goals.
// Nil fields are omitted so an update only touches what was provided.
type MacroGoalsRequest struct {
	TotalCalories *int     `json:"total_calories,omitempty"`
	ProteinPct    *float64 `json:"protein_pct,omitempty"`
	CarbPct       *float64 `json:"carb_pct,omitempty"`
	FatPct        *float64 `json:"fat_pct,omitempty"`
}

// Empty reports whether no field is set.
func (r MacroGoalsRequest) Empty() bool {
	return r.TotalCalories == nil && r.ProteinPct == nil && r.CarbPct == nil && r.FatPct == nil
}

// Complete reports whether every field is set, as required for creation.
func (r MacroGoalsRequest) Complete() bool {
	return r.TotalCalories != nil && r.ProteinPct != nil && r.CarbPct != nil && r.FatPct != nil
}

// MacroGoalsResponse represents a user's stored macro goals.
type MacroGoalsResponse struct {
	UserID        string  `json:"user_id"`
	TotalCalories int     `json:"total_calories"`
	ProteinPct    float64 `json:"protein_pct"`
	CarbPct       float64 `json:"carb_pct"`
	FatPct        float64 `json:"fat_pct"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
