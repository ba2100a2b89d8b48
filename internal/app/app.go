package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"

	"github.com/bhukkad-app/bhukkad/internal/catalog"
	"github.com/bhukkad-app/bhukkad/internal/eventlog"
	"github.com/bhukkad-app/bhukkad/internal/factories"
	"github.com/bhukkad-app/bhukkad/internal/ledger"
	"github.com/bhukkad-app/bhukkad/internal/localcache"
	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/bhukkad-app/bhukkad/internal/repositories/postgres"
	"github.com/bhukkad-app/bhukkad/internal/store"
	"github.com/bhukkad-app/bhukkad/internal/syncer"
)

// App wires the per-user state: catalog, ledger, stores, local cache and the
// sync machinery. Constructed once per command invocation, torn down by Close.
type App struct {
	Config     *models.Config
	Catalog    *catalog.Catalog
	Profile    *models.PreferenceProfile // nil pre-onboarding
	Budget     models.BudgetConfig
	Ledger     *ledger.Ledger
	Favorites  *store.Favorites
	MealPlan   *store.MealPlan
	Cache      *localcache.Cache
	Events     *eventlog.Recorder
	Queue      *models.SyncQueue
	Dispatcher *syncer.Dispatcher
	Rng        *rand.Rand

	pool *pgxpool.Pool
}

// New loads state remote-first with the local cache as fallback.
func New(ctx context.Context, cfg *models.Config) (*App, error) {
	cache, err := localcache.Open(cfg.CacheDir + "/state.json")
	if err != nil {
		return nil, fmt.Errorf("opening local cache: %w", err)
	}
	if cache.GetString(localcache.KeyDeviceID) == "" {
		if err := cache.Put(localcache.KeyDeviceID, cuid.New()); err != nil {
			return nil, fmt.Errorf("writing device id: %w", err)
		}
	}

	dest, err := eventlog.NewDestination(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}

	a := &App{
		Config: cfg,
		Cache:  cache,
		Events: eventlog.NewRecorder(dest, cfg.Kafka.Topic),
		Queue:  models.NewSyncQueue(),
		Budget: cfg.BudgetDefaults(),
		Rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	a.Ledger = ledger.NewLedger(cfg.UserID, a.Queue, a.Events)
	a.Favorites = store.NewFavorites(cfg.UserID, a.Queue, a.Events)
	a.MealPlan = store.NewMealPlan(cfg.UserID, a.Queue, a.Events)
	a.Dispatcher = &syncer.Dispatcher{
		UserID: cfg.UserID,
		Queue:  a.Queue,
		Ledger: a.Ledger,
		Events: a.Events,
	}

	if cfg.RemoteEnabled {
		if err := a.connectRemote(ctx); err != nil {
			// Remote being down is a degraded mode, not a startup failure.
			log.Printf("remote store unavailable, using local cache: %v", err)
			a.loadFromCache()
		}
	} else {
		a.loadFromCache()
	}

	if a.Catalog == nil {
		a.Catalog = seedCatalog(cfg)
	}

	return a, nil
}

func (a *App) connectRemote(ctx context.Context) error {
	pool, err := postgres.NewPool(ctx, a.Config.Database.DSN())
	if err != nil {
		return err
	}
	a.pool = pool

	expenses := postgres.NewExpenseRepository(pool)
	a.Dispatcher.Expenses = expenses
	a.Dispatcher.Favorites = postgres.NewFavoriteRepository(pool)
	a.Dispatcher.Plans = postgres.NewMealPlanRepository(pool)
	a.Dispatcher.Budgets = postgres.NewBudgetRepository(pool)
	a.Dispatcher.Profiles = postgres.NewProfileRepository(pool)

	cat, err := catalog.Load(ctx, postgres.NewRestaurantRepository(pool), postgres.NewMenuItemRepository(pool))
	if err != nil {
		return err
	}
	if len(cat.Items()) > 0 {
		a.Catalog = cat
	}

	if list, err := expenses.ListByUser(ctx, a.Config.UserID); err != nil {
		log.Printf("could not fetch expenses, starting empty: %v", err)
	} else {
		a.Ledger.Replace(list)
	}
	if favs, err := a.Dispatcher.Favorites.ListByUser(ctx, a.Config.UserID); err == nil {
		a.Favorites.Replace(favs)
	}
	if entries, err := a.Dispatcher.Plans.ListByUser(ctx, a.Config.UserID); err == nil {
		a.MealPlan.Replace(entries)
	}
	if cfg, err := a.Dispatcher.Budgets.Get(ctx, a.Config.UserID); err == nil && cfg != nil {
		a.Budget = *cfg
	}
	if p, err := a.Dispatcher.Profiles.Get(ctx, a.Config.UserID); err == nil && p != nil {
		a.Profile = p
	}
	return nil
}

func (a *App) loadFromCache() {
	var profile models.PreferenceProfile
	if ok, err := a.Cache.Get(localcache.KeyProfile, &profile); err == nil && ok {
		a.Profile = &profile
	}
	var budget models.BudgetConfig
	if ok, err := a.Cache.Get(localcache.KeyBudget, &budget); err == nil && ok {
		a.Budget = budget
	}
	var favs []models.FavoriteItem
	if ok, err := a.Cache.Get(localcache.KeyFavorites, &favs); err == nil && ok {
		a.Favorites.Replace(favs)
	}
	var entries []models.MealPlanEntry
	if ok, err := a.Cache.Get(localcache.KeyMealPlan, &entries); err == nil && ok {
		a.MealPlan.Replace(entries)
	}
}

// seedCatalog builds a deterministic in-memory catalog when no remote
// catalog is available.
func seedCatalog(cfg *models.Config) *catalog.Catalog {
	if cfg.Seed != 0 {
		rand.Seed(int64(cfg.Seed))
	}
	restaurantCount := cfg.InitialRestaurants
	if restaurantCount <= 0 {
		restaurantCount = 12
	}
	itemsPer := cfg.ItemsPerRestaurant
	if itemsPer <= 0 {
		itemsPer = 8
	}

	rf := &factories.RestaurantFactory{}
	mf := &factories.MenuItemFactory{}
	var restaurants []*models.Restaurant
	var items []*models.MenuItem
	for i := 0; i < restaurantCount; i++ {
		r := rf.CreateRestaurant(cfg)
		for j := 0; j < itemsPer; j++ {
			item := mf.CreateMenuItem(r)
			r.MenuItems = append(r.MenuItems, item.ID)
			items = append(items, item)
		}
		restaurants = append(restaurants, r)
	}
	return catalog.New(restaurants, items)
}

// SaveBudget stores the caps locally, write-through, and mirrors them remotely.
func (a *App) SaveBudget(cfg models.BudgetConfig) error {
	a.Budget = cfg
	if err := a.Cache.Put(localcache.KeyBudget, cfg); err != nil {
		return err
	}
	a.Queue.Enqueue(&models.SyncOp{Type: models.SyncSaveBudget, Data: cfg})
	a.Events.Record(eventlog.EventBudgetUpdated, cfg)
	return nil
}

// SaveProfile stores the profile locally, write-through, and mirrors it
// remotely. Last writer wins on the remote side.
func (a *App) SaveProfile(p models.PreferenceProfile) error {
	p.UpdatedAt = time.Now()
	a.Profile = &p
	if err := a.Cache.Put(localcache.KeyProfile, p); err != nil {
		return err
	}
	a.Queue.Enqueue(&models.SyncOp{Type: models.SyncSaveProfile, Data: p})
	a.Events.Record(eventlog.EventProfileUpdated, p)
	return nil
}

// Sync drains pending ops and persists the synced collections to the cache.
// Warnings are returned for display; they never fail the command.
func (a *App) Sync(ctx context.Context) []string {
	warnings := a.Dispatcher.Drain(ctx)
	if err := a.Cache.Put(localcache.KeyFavorites, a.Favorites.List()); err != nil {
		log.Printf("cache write failed: %v", err)
	}
	if err := a.Cache.Put(localcache.KeyMealPlan, a.MealPlan.Entries()); err != nil {
		log.Printf("cache write failed: %v", err)
	}
	return warnings
}

// Close tears the app down.
func (a *App) Close() {
	if err := a.Events.Close(); err != nil {
		log.Printf("closing event log: %v", err)
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
