package postgres

import (
	"context"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

func (r *FavoriteRepository) Upsert(ctx context.Context, fav *models.FavoriteItem) error {
	query := `
        INSERT INTO favorites (
            user_id, item_id, name, region, price_min, price_max, bestseller, saved_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (user_id, item_id) DO UPDATE
        SET name = EXCLUDED.name,
            region = EXCLUDED.region,
            price_min = EXCLUDED.price_min,
            price_max = EXCLUDED.price_max,
            bestseller = EXCLUDED.bestseller,
            saved_at = EXCLUDED.saved_at
    `
	_, err := r.pool.Exec(ctx, query,
		fav.UserID,
		fav.ItemID,
		fav.Name,
		fav.Region,
		fav.PriceMin,
		fav.PriceMax,
		fav.Bestseller,
		fav.SavedAt,
	)
	return err
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, itemID string) error {
	_, err := r.pool.Exec(ctx,
		"DELETE FROM favorites WHERE user_id = $1 AND item_id = $2",
		userID, itemID,
	)
	return err
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	query := `
        SELECT user_id, item_id, name, region, price_min, price_max, bestseller, saved_at
        FROM favorites
        WHERE user_id = $1
        ORDER BY saved_at
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []models.FavoriteItem
	for rows.Next() {
		var f models.FavoriteItem
		err := rows.Scan(
			&f.UserID,
			&f.ItemID,
			&f.Name,
			&f.Region,
			&f.PriceMin,
			&f.PriceMax,
			&f.Bestseller,
			&f.SavedAt,
		)
		if err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}
