package postgres

import (
	"context"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"restaurants"},
		[]string{
			"id", "name", "cuisines", "rating", "price_tier",
			"distance_km", "open", "trending",
		},
		pgx.CopyFromSlice(len(restaurants), func(i int) ([]interface{}, error) {
			return []interface{}{
				restaurants[i].ID,
				restaurants[i].Name,
				restaurants[i].Cuisines,
				restaurants[i].Rating,
				restaurants[i].PriceTier,
				restaurants[i].DistanceKm,
				restaurants[i].Open,
				restaurants[i].Trending,
			}, nil
		}),
	)
	return err
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
        INSERT INTO restaurants (
            id, name, cuisines, rating, price_tier, distance_km, open, trending
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8
        )
    `

	_, err := r.pool.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Cuisines,
		restaurant.Rating,
		restaurant.PriceTier,
		restaurant.DistanceKm,
		restaurant.Open,
		restaurant.Trending,
	)
	return err
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]*models.Restaurant, error) {
	query := `
        SELECT
            id, name, cuisines, rating, price_tier, distance_km, open, trending
        FROM restaurants
        ORDER BY created_at, id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		restaurant := &models.Restaurant{}
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Cuisines,
			&restaurant.Rating,
			&restaurant.PriceTier,
			&restaurant.DistanceKm,
			&restaurant.Open,
			&restaurant.Trending,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants CASCADE")
	return err
}
