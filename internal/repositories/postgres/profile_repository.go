package postgres

import (
	"context"
	"errors"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Get returns (nil, nil) pre-onboarding.
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*models.PreferenceProfile, error) {
	p := &models.PreferenceProfile{UserID: userID}
	query := `
        SELECT dietary_type, preferred_cuisines, spice_tolerance,
               budget_min, budget_max, meal_goals, locale, updated_at
        FROM profiles
        WHERE user_id = $1
    `
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.DietaryType,
		&p.PreferredCuisines,
		&p.SpiceTolerance,
		&p.BudgetMin,
		&p.BudgetMax,
		&p.MealGoals,
		&p.Locale,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save upserts the whole profile; last writer wins.
func (r *ProfileRepository) Save(ctx context.Context, profile *models.PreferenceProfile) error {
	query := `
        INSERT INTO profiles (
            user_id, dietary_type, preferred_cuisines, spice_tolerance,
            budget_min, budget_max, meal_goals, locale, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (user_id) DO UPDATE
        SET dietary_type = EXCLUDED.dietary_type,
            preferred_cuisines = EXCLUDED.preferred_cuisines,
            spice_tolerance = EXCLUDED.spice_tolerance,
            budget_min = EXCLUDED.budget_min,
            budget_max = EXCLUDED.budget_max,
            meal_goals = EXCLUDED.meal_goals,
            locale = EXCLUDED.locale,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.pool.Exec(ctx, query,
		profile.UserID,
		profile.DietaryType,
		profile.PreferredCuisines,
		profile.SpiceTolerance,
		profile.BudgetMin,
		profile.BudgetMax,
		profile.MealGoals,
		profile.Locale,
		profile.UpdatedAt,
	)
	return err
}
