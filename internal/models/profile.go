package models

import "time"

// PreferenceProfile holds a user's dietary and budget preferences.
// Created at onboarding; absent before it (a nil profile means no filtering).
type PreferenceProfile struct {
	UserID            string    `json:"user_id"`
	DietaryType       string    `json:"dietary_type"`
	PreferredCuisines []string  `json:"preferred_cuisines"`
	SpiceTolerance    string    `json:"spice_tolerance"`
	BudgetMin         float64   `json:"budget_min"`
	BudgetMax         float64   `json:"budget_max"`
	MealGoals         []string  `json:"meal_goals"`
	Locale            string    `json:"locale"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PrefersCuisine reports whether cuisine is in the preferred set.
func (p *PreferenceProfile) PrefersCuisine(cuisine string) bool {
	for _, c := range p.PreferredCuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}
