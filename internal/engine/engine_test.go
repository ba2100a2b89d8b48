package engine

import (
	"testing"
	"time"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

func at(hour int) time.Time {
	return time.Date(2026, 8, 12, hour, 30, 0, 0, time.UTC)
}

func TestMealSlotForTime(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, models.MealSlotBreakfast},
		{10, models.MealSlotBreakfast},
		{11, models.MealSlotLunch},
		{14, models.MealSlotLunch},
		{15, models.MealSlotSnacks},
		{17, models.MealSlotSnacks},
		{18, models.MealSlotDinner},
		{22, models.MealSlotDinner},
		{23, models.MealSlotDinner},
		{2, models.MealSlotDinner},
		{5, models.MealSlotDinner},
	}
	for _, tt := range tests {
		if got := MealSlotForTime(at(tt.hour)); got != tt.want {
			t.Errorf("MealSlotForTime(%02d:30) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func testCatalog() []*models.MenuItem {
	lunch := []string{models.MealSlotLunch}
	return []*models.MenuItem{
		{ID: "m1", Name: "Chole Bhature", Region: "punjabi", Veg: true, PriceMin: 80, PriceMax: 120, MealSlots: lunch},
		{ID: "m2", Name: "Butter Chicken", Region: "punjabi", Veg: false, PriceMin: 220, PriceMax: 280, MealSlots: lunch},
		{ID: "m3", Name: "Masala Dosa", Region: "south_indian", Veg: true, PriceMin: 60, PriceMax: 90, MealSlots: lunch},
		{ID: "m4", Name: "Veg Thali", Region: "gujarati", Veg: true, PriceMin: 150, PriceMax: 200, MealSlots: lunch},
		{ID: "m5", Name: "Idli Sambar", Region: "south_indian", Veg: true, PriceMin: 40, PriceMax: 60, MealSlots: []string{models.MealSlotBreakfast}},
		{ID: "m6", Name: "Paneer Tikka", Region: "punjabi", Veg: true, PriceMin: 400, PriceMax: 450, MealSlots: lunch},
	}
}

func ids(items []*models.MenuItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func assertOrder(t *testing.T, got []*models.MenuItem, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got %v, want %v", ids(got), want)
		}
	}
}

func TestRecommendFiltersAndRanks(t *testing.T) {
	profile := &models.PreferenceProfile{
		UserID:            "u1",
		DietaryType:       models.DietVegetarian,
		PreferredCuisines: []string{"south_indian"},
		BudgetMax:         300,
	}
	noon := at(12)

	// m2 fails the veg filter, m5 the lunch slot, m6 the budget.
	// m3 outranks the other survivors by preferred cuisine; m1 and m4
	// keep catalog order.
	got := Recommend(profile, testCatalog(), noon, 10)
	assertOrder(t, got, "m3", "m1", "m4")

	// Same inputs, same order.
	again := Recommend(profile, testCatalog(), noon, 10)
	assertOrder(t, again, "m3", "m1", "m4")
}

func TestRecommendLimit(t *testing.T) {
	profile := &models.PreferenceProfile{DietaryType: models.DietEverything, BudgetMax: 1000}
	got := Recommend(profile, testCatalog(), at(12), 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got := Recommend(profile, testCatalog(), at(12), 0); got != nil {
		t.Fatalf("limit 0 should return nil, got %v", ids(got))
	}
}

func TestRecommendNilProfile(t *testing.T) {
	catalog := testCatalog()
	got := Recommend(nil, catalog, at(12), 3)
	assertOrder(t, got, "m1", "m2", "m3")
}

func TestRecommendByBudget(t *testing.T) {
	catalog := []*models.MenuItem{
		{ID: "a", PriceMax: 145, Bestseller: true},
		{ID: "b", PriceMax: 100},
		{ID: "c", PriceMax: 160, Bestseller: true},
		{ID: "d", PriceMax: 100},
	}

	// At 150 the scores are b,d = 50 and a = 10+5 = 15; c does not fit.
	// b and d tie, so catalog order decides.
	got := RecommendByBudget(catalog, 150, 10)
	assertOrder(t, got, "b", "d", "a")

	// At 200 everything fits; a's cheaper max price keeps it ahead of c
	// since both carry the same bestseller bonus.
	got = RecommendByBudget(catalog, 200, 10)
	assertOrder(t, got, "b", "d", "a", "c")
}

func TestRecommendByBudgetBestsellerBonus(t *testing.T) {
	catalog := []*models.MenuItem{
		{ID: "plain", PriceMax: 100},
		{ID: "best", PriceMax: 105, Bestseller: true},
	}
	// 10-point bonus beats the 5 of extra headroom.
	got := RecommendByBudget(catalog, 150, 10)
	assertOrder(t, got, "best", "plain")
}

func TestTrending(t *testing.T) {
	catalog := []*models.MenuItem{
		{ID: "m1"},
		{ID: "m2", Bestseller: true},
		{ID: "m3", Bestseller: true},
		{ID: "m4"},
		{ID: "m5", Bestseller: true},
	}
	assertOrder(t, Trending(catalog, 10), "m2", "m3", "m5")
	assertOrder(t, Trending(catalog, 2), "m2", "m3")
}
