package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/bhukkad-app/bhukkad/internal/repositories"
)

// Catalog is the read-only set of restaurants and menu items. Load order is
// catalog order: the recommendation engine's stable ranking depends on the
// Items slice never being reordered.
type Catalog struct {
	items          []*models.MenuItem
	restaurants    []*models.Restaurant
	itemByID       map[string]*models.MenuItem
	restaurantByID map[string]*models.Restaurant
}

// New builds a catalog from already-ordered reference data.
func New(restaurants []*models.Restaurant, items []*models.MenuItem) *Catalog {
	c := &Catalog{
		items:          items,
		restaurants:    restaurants,
		itemByID:       make(map[string]*models.MenuItem, len(items)),
		restaurantByID: make(map[string]*models.Restaurant, len(restaurants)),
	}
	for _, item := range items {
		c.itemByID[item.ID] = item
	}
	for _, r := range restaurants {
		c.restaurantByID[r.ID] = r
	}
	return c
}

// Load reads the full catalog from the remote store.
func Load(ctx context.Context, restaurants repositories.RestaurantRepository, menuItems repositories.MenuItemRepository) (*Catalog, error) {
	rs, err := restaurants.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading restaurants: %w", err)
	}
	items, err := menuItems.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading menu items: %w", err)
	}
	return New(rs, items), nil
}

// Items returns the menu items in catalog order.
func (c *Catalog) Items() []*models.MenuItem { return c.items }

// Restaurants returns the restaurants in catalog order.
func (c *Catalog) Restaurants() []*models.Restaurant { return c.restaurants }

// Item looks an item up by id.
func (c *Catalog) Item(id string) (*models.MenuItem, bool) {
	item, ok := c.itemByID[id]
	return item, ok
}

// Restaurant looks a restaurant up by id.
func (c *Catalog) Restaurant(id string) (*models.Restaurant, bool) {
	r, ok := c.restaurantByID[id]
	return r, ok
}

// ItemsForSlot returns items served in the given meal slot, catalog order.
func (c *Catalog) ItemsForSlot(slot string) []*models.MenuItem {
	var out []*models.MenuItem
	for _, item := range c.items {
		if item.HasSlot(slot) {
			out = append(out, item)
		}
	}
	return out
}

// OpenRestaurants returns currently open restaurants, catalog order.
func (c *Catalog) OpenRestaurants() []*models.Restaurant {
	var out []*models.Restaurant
	for _, r := range c.restaurants {
		if r.Open {
			out = append(out, r)
		}
	}
	return out
}

// Search matches the query case-insensitively against item names, local
// names and regions, catalog order.
func (c *Catalog) Search(query string) []*models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*models.MenuItem
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.LocalName), q) ||
			strings.Contains(strings.ToLower(item.Region), q) {
			out = append(out, item)
		}
	}
	return out
}
