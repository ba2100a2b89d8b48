package cmd

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/factories"
	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/bhukkad-app/bhukkad/internal/repositories/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the remote store with a generated catalog",
	Long: `Generates restaurants and menu items and bulk-inserts them into the remote
store. With --fresh the existing catalog is dropped first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		restaurants, _ := cmd.Flags().GetInt("restaurants")
		itemsPer, _ := cmd.Flags().GetInt("items-per-restaurant")
		fresh, _ := cmd.Flags().GetBool("fresh")

		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if restaurants <= 0 {
			restaurants = cfg.InitialRestaurants
		}
		if itemsPer <= 0 {
			itemsPer = cfg.ItemsPerRestaurant
		}
		if cfg.Seed != 0 {
			rand.Seed(int64(cfg.Seed))
		}

		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to the remote store: %w", err)
		}
		defer pool.Close()

		restaurantRepo := postgres.NewRestaurantRepository(pool)
		menuItemRepo := postgres.NewMenuItemRepository(pool)

		if fresh {
			if err := menuItemRepo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clearing menu items: %w", err)
			}
			if err := restaurantRepo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clearing restaurants: %w", err)
			}
		}

		rf := &factories.RestaurantFactory{}
		mf := &factories.MenuItemFactory{}

		bar := progressbar.Default(int64(restaurants), "generating catalog")
		var rs []*models.Restaurant
		var items []*models.MenuItem
		for i := 0; i < restaurants; i++ {
			r := rf.CreateRestaurant(cfg)
			for j := 0; j < itemsPer; j++ {
				item := mf.CreateMenuItem(r)
				r.MenuItems = append(r.MenuItems, item.ID)
				items = append(items, item)
			}
			rs = append(rs, r)
			bar.Add(1)
		}

		if err := restaurantRepo.BulkCreate(ctx, rs); err != nil {
			return fmt.Errorf("inserting restaurants: %w", err)
		}
		if err := menuItemRepo.BulkCreate(ctx, items); err != nil {
			return fmt.Errorf("inserting menu items: %w", err)
		}

		fmt.Printf("Seeded %d restaurants with %d menu items\n", len(rs), len(items))
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("restaurants", 0, "Number of restaurants to generate")
	seedCmd.Flags().Int("items-per-restaurant", 0, "Menu items per restaurant")
	seedCmd.Flags().Bool("fresh", false, "Drop the existing catalog first")
	rootCmd.AddCommand(seedCmd)
}
