package postgres

import (
	"context"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MealPlanRepository struct {
	pool *pgxpool.Pool
}

func NewMealPlanRepository(pool *pgxpool.Pool) *MealPlanRepository {
	return &MealPlanRepository{pool: pool}
}

func (r *MealPlanRepository) Upsert(ctx context.Context, entry *models.MealPlanEntry) error {
	query := `
        INSERT INTO meal_plan_entries (
            user_id, date, slot, item_id, item_name, region, price_max
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, date, slot) DO UPDATE
        SET item_id = EXCLUDED.item_id,
            item_name = EXCLUDED.item_name,
            region = EXCLUDED.region,
            price_max = EXCLUDED.price_max
    `
	_, err := r.pool.Exec(ctx, query,
		entry.UserID,
		entry.Date,
		entry.Slot,
		entry.ItemID,
		entry.ItemName,
		entry.Region,
		entry.PriceMax,
	)
	return err
}

func (r *MealPlanRepository) Delete(ctx context.Context, userID, date, slot string) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM meal_plan_entries WHERE user_id = $1 AND date = $2 AND slot = $3",
		userID, date, slot,
	)
	return err
}

func (r *MealPlanRepository) ListByUser(ctx context.Context, userID string) ([]models.MealPlanEntry, error) {
	query := `
        SELECT user_id, date, slot, item_id, item_name, region, price_max
        FROM meal_plan_entries
        WHERE user_id = $1
        ORDER BY date, slot
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.MealPlanEntry
	for rows.Next() {
		var e models.MealPlanEntry
		err := rows.Scan(
			&e.UserID,
			&e.Date,
			&e.Slot,
			&e.ItemID,
			&e.ItemName,
			&e.Region,
			&e.PriceMax,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
