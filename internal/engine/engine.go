package engine

import (
	"sort"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

// MealSlotForTime maps wall-clock time to a meal slot. The mapping is total
// and non-overlapping: 06-11 breakfast, 11-15 lunch, 15-18 snacks, 18-23
// dinner, and the late-night span 23-06 folds into dinner.
func MealSlotForTime(t time.Time) string {
	h := t.Hour()
	switch {
	case h >= 6 && h < 11:
		return models.MealSlotBreakfast
	case h >= 11 && h < 15:
		return models.MealSlotLunch
	case h >= 15 && h < 18:
		return models.MealSlotSnacks
	default:
		return models.MealSlotDinner
	}
}

// matchesDiet applies the dietary predicate for the profile's type.
// Types beyond vegetarian/vegan/jain impose no filter.
func matchesDiet(item *models.MenuItem, dietary string) bool {
	switch dietary {
	case models.DietVegetarian:
		return item.Veg
	case models.DietVegan:
		return item.HasDietaryTag(models.DietVegan)
	case models.DietJain:
		return item.JainFriendly
	default:
		return true
	}
}

// Recommend filters the catalog against the profile and the meal slot derived
// from now, ranks preferred-cuisine items first and returns at most limit
// items. Ranking is stable: within each band, catalog order is preserved.
// A nil profile returns the catalog unfiltered, capped at limit.
func Recommend(profile *models.PreferenceProfile, catalog []*models.MenuItem, now time.Time, limit int) []*models.MenuItem {
	if limit <= 0 {
		return nil
	}
	if profile == nil {
		return capped(catalog, limit)
	}

	slot := MealSlotForTime(now)
	kept := make([]*models.MenuItem, 0, len(catalog))
	for _, item := range catalog {
		if !matchesDiet(item, profile.DietaryType) {
			continue
		}
		if item.PriceMin > profile.BudgetMax {
			continue
		}
		if !item.HasSlot(slot) {
			continue
		}
		kept = append(kept, item)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return profile.PrefersCuisine(kept[i].Region) && !profile.PrefersCuisine(kept[j].Region)
	})

	return capped(kept, limit)
}

// RecommendByBudget keeps items whose max price fits within budget and ranks
// by score = 10 for a bestseller plus the headroom (budget - max price),
// descending. Ties keep catalog order.
func RecommendByBudget(catalog []*models.MenuItem, budget float64, limit int) []*models.MenuItem {
	if limit <= 0 {
		return nil
	}
	kept := make([]*models.MenuItem, 0, len(catalog))
	for _, item := range catalog {
		if item.PriceMax <= budget {
			kept = append(kept, item)
		}
	}

	score := func(item *models.MenuItem) float64 {
		s := budget - item.PriceMax
		if item.Bestseller {
			s += 10
		}
		return s
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return score(kept[i]) > score(kept[j])
	})

	return capped(kept, limit)
}

// Trending returns bestseller items in catalog order, capped at limit.
func Trending(catalog []*models.MenuItem, limit int) []*models.MenuItem {
	if limit <= 0 {
		return nil
	}
	kept := make([]*models.MenuItem, 0, limit)
	for _, item := range catalog {
		if item.Bestseller {
			kept = append(kept, item)
			if len(kept) == limit {
				break
			}
		}
	}
	return kept
}

func capped(items []*models.MenuItem, limit int) []*models.MenuItem {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
