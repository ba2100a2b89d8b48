package models

// MealPlanEntry assigns a menu item snapshot to a (date, slot) pair.
// Dates are ISO "2006-01-02" strings; at most one entry per pair.
type MealPlanEntry struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	Slot     string  `json:"slot"`
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Region   string  `json:"region"`
	PriceMax float64 `json:"price_max"`
}

// PlanKey identifies a meal-plan cell.
type PlanKey struct {
	Date string
	Slot string
}
