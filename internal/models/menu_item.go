package models

// MenuItem is immutable reference data loaded with the catalog.
type MenuItem struct {
	ID           string   `json:"id"`
	RestaurantID string   `json:"restaurant_id"`
	Name         string   `json:"name"`
	LocalName    string   `json:"local_name,omitempty"`
	Description  string   `json:"description"`
	PriceMin     float64  `json:"price_min"`
	PriceMax     float64  `json:"price_max"`
	Calories     int      `json:"calories"`
	PrepTime     float64  `json:"prep_time"` // Preparation time in minutes
	SpiceLevel   string   `json:"spice_level"`
	DietaryTags  []string `json:"dietary_tags"`
	Veg          bool     `json:"veg"`
	JainFriendly bool     `json:"jain_friendly"`
	Bestseller   bool     `json:"bestseller"`
	Region       string   `json:"region"` // regional cuisine tag, e.g. "Punjabi"
	MealSlots    []string `json:"meal_slots"`
}

// HasSlot reports whether the item is served in the given meal slot.
func (m *MenuItem) HasSlot(slot string) bool {
	for _, s := range m.MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// HasDietaryTag reports whether the item carries the given dietary tag.
func (m *MenuItem) HasDietaryTag(tag string) bool {
	for _, t := range m.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}
