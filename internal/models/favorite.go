package models

import "time"

// FavoriteItem is a snapshot of a liked menu item, keyed by the item id.
// At most one favorite per item id per user.
type FavoriteItem struct {
	ItemID     string    `json:"item_id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Region     string    `json:"region"`
	PriceMin   float64   `json:"price_min"`
	PriceMax   float64   `json:"price_max"`
	Bestseller bool      `json:"bestseller"`
	SavedAt    time.Time `json:"saved_at"`
}

// NewFavorite snapshots the display fields of a menu item.
func NewFavorite(userID string, item *MenuItem, savedAt time.Time) FavoriteItem {
	return FavoriteItem{
		ItemID:     item.ID,
		UserID:     userID,
		Name:       item.Name,
		Region:     item.Region,
		PriceMin:   item.PriceMin,
		PriceMax:   item.PriceMax,
		Bestseller: item.Bestseller,
		SavedAt:    savedAt,
	}
}
