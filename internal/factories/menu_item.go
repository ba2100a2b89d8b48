package factories

import (
	"math/rand"

	"github.com/lucsky/cuid"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

type MenuItemFactory struct{}

func (mf *MenuItemFactory) CreateMenuItem(restaurant *models.Restaurant) *models.MenuItem {
	region := restaurant.Cuisines[rand.Intn(len(restaurant.Cuisines))]
	veg := rand.Float64() < 0.6
	priceMin := fake.Float64(0, 40, 250)

	item := &models.MenuItem{
		ID:           cuid.New(),
		RestaurantID: restaurant.ID,
		Name:         generateRandomDishName(region),
		Description:  fake.Lorem().Sentence(8),
		PriceMin:     priceMin,
		PriceMax:     priceMin + fake.Float64(0, 10, 120),
		Calories:     fake.IntBetween(120, 900),
		PrepTime:     fake.Float64(0, 5, 45),
		SpiceLevel:   generateRandomSpiceLevel(),
		Veg:          veg,
		JainFriendly: veg && rand.Float64() < 0.3,
		Bestseller:   rand.Float64() < 0.25,
		Region:       region,
		MealSlots:    generateRandomMealSlots(),
	}
	item.DietaryTags = dietaryTagsFor(item)
	return item
}

func generateRandomDishName(region string) string {
	dishes := map[string][]string{
		"Punjabi":       {"Butter Chicken", "Dal Makhani", "Chole Bhature", "Paneer Tikka", "Amritsari Kulcha"},
		"South Indian":  {"Masala Dosa", "Idli Sambar", "Medu Vada", "Rava Upma", "Filter Coffee"},
		"Gujarati":      {"Dhokla", "Thepla", "Undhiyu", "Khandvi", "Fafda Jalebi"},
		"Bengali":       {"Fish Curry", "Kosha Mangsho", "Shorshe Ilish", "Mishti Doi", "Rasgulla"},
		"Rajasthani":    {"Dal Baati Churma", "Laal Maas", "Gatte ki Sabzi", "Pyaaz Kachori"},
		"Maharashtrian": {"Vada Pav", "Misal Pav", "Puran Poli", "Sabudana Khichdi"},
		"Hyderabadi":    {"Chicken Biryani", "Haleem", "Mirchi ka Salan", "Double ka Meetha"},
		"Chinese":       {"Hakka Noodles", "Veg Manchurian", "Chilli Paneer", "Fried Rice"},
		"Italian":       {"Margherita Pizza", "Pasta Arrabbiata", "Lasagna", "Tiramisu"},
		"Continental":   {"Grilled Sandwich", "Caesar Salad", "Garlic Bread", "Mushroom Risotto"},
		"Street Food":   {"Pani Puri", "Bhel Puri", "Pav Bhaji", "Dahi Puri", "Sev Puri"},
		"Mughlai":       {"Mutton Korma", "Seekh Kebab", "Shahi Paneer", "Galouti Kebab"},
		"Kerala":        {"Appam with Stew", "Puttu Kadala", "Malabar Parotta", "Fish Moilee"},
		"Goan":          {"Prawn Curry", "Chicken Xacuti", "Pork Vindaloo", "Bebinca"},
	}
	if names, ok := dishes[region]; ok {
		return names[rand.Intn(len(names))]
	}
	return "Chef's Special"
}

func generateRandomSpiceLevel() string {
	levels := []string{models.SpiceMild, models.SpiceMedium, models.SpiceSpicy, models.SpiceExtraSpicy}
	return levels[rand.Intn(len(levels))]
}

func generateRandomMealSlots() []string {
	all := []string{
		models.MealSlotBreakfast,
		models.MealSlotLunch,
		models.MealSlotSnacks,
		models.MealSlotDinner,
		models.MealSlotDessert,
	}
	count := rand.Intn(3) + 1 // 1 to 3 slots
	seen := make(map[string]bool, count)
	slots := make([]string, 0, count)
	for len(slots) < count {
		s := all[rand.Intn(len(all))]
		if !seen[s] {
			seen[s] = true
			slots = append(slots, s)
		}
	}
	return slots
}

func dietaryTagsFor(item *models.MenuItem) []string {
	var tags []string
	if item.Veg {
		tags = append(tags, models.DietVegetarian)
		if rand.Float64() < 0.25 {
			tags = append(tags, models.DietVegan)
		}
	} else {
		tags = append(tags, models.DietNonVegetarian)
	}
	if item.JainFriendly {
		tags = append(tags, models.DietJain)
	}
	return tags
}
