package postgres

import (
	"context"
	"errors"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Get returns (nil, nil) when the user has no stored caps yet.
func (r *BudgetRepository) Get(ctx context.Context, userID string) (*models.BudgetConfig, error) {
	cfg := &models.BudgetConfig{UserID: userID}
	err := r.pool.QueryRow(ctx,
		"SELECT daily, weekly, monthly FROM budget_configs WHERE user_id = $1",
		userID,
	).Scan(&cfg.Daily, &cfg.Weekly, &cfg.Monthly)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *BudgetRepository) Save(ctx context.Context, cfg *models.BudgetConfig) error {
	query := `
        INSERT INTO budget_configs (user_id, daily, weekly, monthly)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE
        SET daily = EXCLUDED.daily,
            weekly = EXCLUDED.weekly,
            monthly = EXCLUDED.monthly
    `
	_, err := r.pool.Exec(ctx, query, cfg.UserID, cfg.Daily, cfg.Weekly, cfg.Monthly)
	return err
}
