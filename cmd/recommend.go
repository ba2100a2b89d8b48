package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/engine"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend dishes for the current meal time",
	Long: `Filters the catalog against your dietary preference, budget band and the
current meal slot, ranking dishes from your preferred cuisines first. With
--budget it instead ranks everything affordable at that amount, bestsellers
first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		budget, _ := cmd.Flags().GetFloat64("budget")

		return withApp(func(ctx context.Context, a *app.App) error {
			now := time.Now()
			var picks []*models.MenuItem
			if cmd.Flags().Changed("budget") {
				if budget <= 0 {
					return fmt.Errorf("budget must be positive, got %.2f", budget)
				}
				picks = engine.RecommendByBudget(a.Catalog.Items(), budget, limit)
				fmt.Printf("Top picks under %s%.0f:\n", symbol(a.Config.Currency), budget)
			} else {
				picks = engine.Recommend(a.Profile, a.Catalog.Items(), now, limit)
				fmt.Printf("Recommended for %s:\n", engine.MealSlotForTime(now))
			}
			printItems(a, picks)
			return nil
		})
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show what everyone is ordering",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withApp(func(ctx context.Context, a *app.App) error {
			picks := engine.Trending(a.Catalog.Items(), limit)
			fmt.Println("Trending now:")
			printItems(a, picks)
			return nil
		})
	},
}

func printItems(a *app.App, items []*models.MenuItem) {
	if len(items) == 0 {
		fmt.Println("  nothing matched, try widening your preferences")
		return
	}
	cur := symbol(a.Config.Currency)
	for i, item := range items {
		marker := " "
		if item.Bestseller {
			marker = "*"
		}
		vendor := ""
		if r, ok := a.Catalog.Restaurant(item.RestaurantID); ok {
			vendor = " @ " + r.Name
		}
		fmt.Printf("%3d. %s %-32s %s%.0f-%.0f%s  [%s]\n",
			i+1, marker, item.Name, cur, item.PriceMin, item.PriceMax, vendor, item.ID)
	}
}

func symbol(currency string) string {
	if currency == "INR" || currency == "" {
		return "₹"
	}
	return currency + " "
}

func init() {
	recommendCmd.Flags().Int("limit", 10, "Maximum number of dishes to show")
	recommendCmd.Flags().Float64("budget", 0, "Rank by value for money at this budget instead")
	trendingCmd.Flags().Int("limit", 10, "Maximum number of dishes to show")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(trendingCmd)
}
