package models

const (
	MealSlotBreakfast = "breakfast"
	MealSlotLunch     = "lunch"
	MealSlotSnacks    = "snacks"
	MealSlotDinner    = "dinner"
	MealSlotDessert   = "dessert"

	SpiceMild       = "mild"
	SpiceMedium     = "medium"
	SpiceSpicy      = "spicy"
	SpiceExtraSpicy = "extra_spicy"

	DietVegetarian    = "vegetarian"
	DietVegan         = "vegan"
	DietJain          = "jain"
	DietEggetarian    = "eggetarian"
	DietNonVegetarian = "non_vegetarian"
	DietEverything    = "everything"

	CategoryDineIn     = "dine_in"
	CategoryDelivery   = "delivery"
	CategoryTakeout    = "takeout"
	CategoryHomeCooked = "home_cooked"
	CategoryStreetFood = "street_food"

	BudgetStatusHealthy = "healthy"
	BudgetStatusWarning = "warning"
	BudgetStatusDanger  = "danger"

	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// PlannedSlots are the slots a weekly meal plan fills; dessert is excluded.
var PlannedSlots = []string{MealSlotBreakfast, MealSlotLunch, MealSlotSnacks, MealSlotDinner}

// MealSlots lists every slot, in day order.
var MealSlots = []string{MealSlotBreakfast, MealSlotLunch, MealSlotSnacks, MealSlotDinner, MealSlotDessert}

// ExpenseCategories is the closed set of expense categories.
var ExpenseCategories = []string{CategoryDineIn, CategoryDelivery, CategoryTakeout, CategoryHomeCooked, CategoryStreetFood}

// DietaryTypes lists the supported dietary preferences.
var DietaryTypes = []string{DietVegetarian, DietVegan, DietJain, DietEggetarian, DietNonVegetarian, DietEverything}

var spiceRank = map[string]int{
	SpiceMild:       0,
	SpiceMedium:     1,
	SpiceSpicy:      2,
	SpiceExtraSpicy: 3,
}

// SpiceRank returns the ordinal position of a spice level, mild first.
// Unknown levels rank below mild.
func SpiceRank(level string) int {
	if r, ok := spiceRank[level]; ok {
		return r
	}
	return -1
}

// ValidCategory reports whether c is one of the closed expense categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryDineIn, CategoryDelivery, CategoryTakeout, CategoryHomeCooked, CategoryStreetFood:
		return true
	}
	return false
}

// ValidMealSlot reports whether s is a known meal slot.
func ValidMealSlot(s string) bool {
	switch s {
	case MealSlotBreakfast, MealSlotLunch, MealSlotSnacks, MealSlotDinner, MealSlotDessert:
		return true
	}
	return false
}

// ValidDietaryType reports whether d is a known dietary type.
func ValidDietaryType(d string) bool {
	switch d {
	case DietVegetarian, DietVegan, DietJain, DietEggetarian, DietNonVegetarian, DietEverything:
		return true
	}
	return false
}
