package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/bhukkad-app/bhukkad/internal/models"
)

var fake = faker.New()

type RestaurantFactory struct{}

func (rf *RestaurantFactory) CreateRestaurant(config *models.Config) *models.Restaurant {
	return &models.Restaurant{
		ID:         cuid.New(),
		Name:       fake.Company().Name(),
		Cuisines:   generateRandomCuisines(),
		Rating:     fake.Float64(1, 1, 5),
		PriceTier:  fake.IntBetween(1, 4),
		DistanceKm: fake.Float64(1, 0, 15),
		Open:       rand.Float64() < 0.8,
		Trending:   rand.Float64() < 0.2,
		MenuItems:  make([]string, 0),
	}
}

func generateRandomCuisines() []string {
	allCuisines := []string{"Punjabi", "South Indian", "Gujarati", "Bengali", "Rajasthani", "Maharashtrian", "Hyderabadi", "Chinese", "Italian", "Continental", "Street Food", "Mughlai", "Kerala", "Goan"}
	cuisineCount := rand.Intn(3) + 1 // 1 to 3 cuisines
	cuisines := make([]string, cuisineCount)
	for i := 0; i < cuisineCount; i++ {
		cuisines[i] = allCuisines[rand.Intn(len(allCuisines))]
	}
	return cuisines
}
