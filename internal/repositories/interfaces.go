package repositories

import (
	"context"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

// The remote store is table-oriented: list-by-user reads, upserts and keyed
// deletes. Postgres implementations live under repositories/postgres.

type ExpenseRepository interface {
	// Insert stores the expense and returns the server-assigned id.
	Insert(ctx context.Context, expense *models.Expense) (string, error)
	Update(ctx context.Context, id string, patch models.ExpensePatch) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.Expense, error)
}

type BudgetRepository interface {
	Get(ctx context.Context, userID string) (*models.BudgetConfig, error)
	Save(ctx context.Context, cfg *models.BudgetConfig) error
}

type FavoriteRepository interface {
	Upsert(ctx context.Context, fav *models.FavoriteItem) error
	Delete(ctx context.Context, userID, itemID string) error
	ListByUser(ctx context.Context, userID string) ([]models.FavoriteItem, error)
}

type MealPlanRepository interface {
	Upsert(ctx context.Context, entry *models.MealPlanEntry) error
	Delete(ctx context.Context, userID, date, slot string) error
	ListByUser(ctx context.Context, userID string) ([]models.MealPlanEntry, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.PreferenceProfile, error)
	Save(ctx context.Context, profile *models.PreferenceProfile) error
}

type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetAll(ctx context.Context) ([]*models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type MenuItemRepository interface {
	BulkCreate(ctx context.Context, menuItems []*models.MenuItem) error
	Create(ctx context.Context, menuItem *models.MenuItem) error
	GetAll(ctx context.Context) ([]*models.MenuItem, error)
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
