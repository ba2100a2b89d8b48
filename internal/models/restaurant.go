package models

// Restaurant is immutable reference data loaded with the catalog.
type Restaurant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Cuisines   []string `json:"cuisines"`
	Rating     float64  `json:"rating"`
	PriceTier  int      `json:"price_tier"` // 1 (cheap) to 4 (premium)
	DistanceKm float64  `json:"distance_km"`
	Open       bool     `json:"open"`
	Trending   bool     `json:"trending"`
	MenuItems  []string `json:"menu_item_ids"`
}

// ServesCuisine reports whether the restaurant lists the given cuisine.
func (r *Restaurant) ServesCuisine(cuisine string) bool {
	for _, c := range r.Cuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}
