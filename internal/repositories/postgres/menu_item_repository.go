package postgres

import (
	"context"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"menu_items"},
		[]string{
			"id", "restaurant_id", "name", "local_name", "description",
			"price_min", "price_max", "calories", "prep_time", "spice_level",
			"dietary_tags", "veg", "jain_friendly", "bestseller", "region",
			"meal_slots",
		},
		pgx.CopyFromSlice(len(menuItems), func(i int) ([]interface{}, error) {
			return []interface{}{
				menuItems[i].ID,
				menuItems[i].RestaurantID,
				menuItems[i].Name,
				menuItems[i].LocalName,
				menuItems[i].Description,
				menuItems[i].PriceMin,
				menuItems[i].PriceMax,
				menuItems[i].Calories,
				menuItems[i].PrepTime,
				menuItems[i].SpiceLevel,
				menuItems[i].DietaryTags,
				menuItems[i].Veg,
				menuItems[i].JainFriendly,
				menuItems[i].Bestseller,
				menuItems[i].Region,
				menuItems[i].MealSlots,
			}, nil
		}),
	)
	return err
}

func (r *MenuItemRepository) Create(ctx context.Context, menuItem *models.MenuItem) error {
	query := `
        INSERT INTO menu_items (
            id, restaurant_id, name, local_name, description, price_min,
            price_max, calories, prep_time, spice_level, dietary_tags,
            veg, jain_friendly, bestseller, region, meal_slots
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
        )
    `

	_, err := r.pool.Exec(ctx, query,
		menuItem.ID,
		menuItem.RestaurantID,
		menuItem.Name,
		menuItem.LocalName,
		menuItem.Description,
		menuItem.PriceMin,
		menuItem.PriceMax,
		menuItem.Calories,
		menuItem.PrepTime,
		menuItem.SpiceLevel,
		menuItem.DietaryTags,
		menuItem.Veg,
		menuItem.JainFriendly,
		menuItem.Bestseller,
		menuItem.Region,
		menuItem.MealSlots,
	)
	return err
}

func (r *MenuItemRepository) GetAll(ctx context.Context) ([]*models.MenuItem, error) {
	query := `
        SELECT
            id,
            restaurant_id,
            name,
            local_name,
            description,
            price_min,
            price_max,
            calories,
            prep_time,
            spice_level,
            dietary_tags,
            veg,
            jain_friendly,
            bestseller,
            region,
            meal_slots
        FROM menu_items
        ORDER BY created_at, id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menuItems []*models.MenuItem
	for rows.Next() {
		menuItem := &models.MenuItem{}
		err := rows.Scan(
			&menuItem.ID,
			&menuItem.RestaurantID,
			&menuItem.Name,
			&menuItem.LocalName,
			&menuItem.Description,
			&menuItem.PriceMin,
			&menuItem.PriceMax,
			&menuItem.Calories,
			&menuItem.PrepTime,
			&menuItem.SpiceLevel,
			&menuItem.DietaryTags,
			&menuItem.Veg,
			&menuItem.JainFriendly,
			&menuItem.Bestseller,
			&menuItem.Region,
			&menuItem.MealSlots,
		)
		if err != nil {
			return nil, err
		}
		menuItems = append(menuItems, menuItem)
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.MenuItem, error) {
	query := `
        SELECT
            id, restaurant_id, name, local_name, description, price_min,
            price_max, calories, prep_time, spice_level, dietary_tags,
            veg, jain_friendly, bestseller, region, meal_slots
        FROM menu_items
        WHERE restaurant_id = $1
        ORDER BY created_at, id
    `
	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menuItems []*models.MenuItem
	for rows.Next() {
		menuItem := &models.MenuItem{}
		err := rows.Scan(
			&menuItem.ID,
			&menuItem.RestaurantID,
			&menuItem.Name,
			&menuItem.LocalName,
			&menuItem.Description,
			&menuItem.PriceMin,
			&menuItem.PriceMax,
			&menuItem.Calories,
			&menuItem.PrepTime,
			&menuItem.SpiceLevel,
			&menuItem.DietaryTags,
			&menuItem.Veg,
			&menuItem.JainFriendly,
			&menuItem.Bestseller,
			&menuItem.Region,
			&menuItem.MealSlots,
		)
		if err != nil {
			return nil, err
		}
		menuItems = append(menuItems, menuItem)
	}
	return menuItems, rows.Err()
}

func (r *MenuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func (r *MenuItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE menu_items CASCADE")
	return err
}
