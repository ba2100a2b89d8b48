package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/models"
	"github.com/bhukkad-app/bhukkad/internal/store"
)

var mealplanCmd = &cobra.Command{
	Use:   "mealplan",
	Short: "Plan the week's meals",
}

var mealplanShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the plan for the 7 days starting today",
	RunE: func(cmd *cobra.Command, args []string) error {
		startFlag, _ := cmd.Flags().GetString("start")
		return withApp(func(ctx context.Context, a *app.App) error {
			start, err := planStart(startFlag)
			if err != nil {
				return err
			}
			week := a.MealPlan.Week(start)
			cur := symbol(a.Config.Currency)
			for i := 0; i < 7; i++ {
				date := start.AddDate(0, 0, i).Format(store.ISODate)
				fmt.Println(date)
				slots, ok := week[date]
				if !ok {
					fmt.Println("  (empty)")
					continue
				}
				for _, slot := range models.PlannedSlots {
					if e, planned := slots[slot]; planned {
						fmt.Printf("  %-10s %-32s %s%.0f\n", slot, e.ItemName, cur, e.PriceMax)
					}
				}
			}
			return nil
		})
	},
}

var mealplanSetCmd = &cobra.Command{
	Use:   "set <date> <slot> <item-id>",
	Short: "Plan a dish for a date and meal slot",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, slot, itemID := args[0], args[1], args[2]
		if _, err := time.Parse(store.ISODate, date); err != nil {
			return fmt.Errorf("bad date %q, want YYYY-MM-DD", date)
		}
		if !plannedSlot(slot) {
			return fmt.Errorf("unknown slot %q, want one of %s", slot, strings.Join(models.PlannedSlots, ", "))
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			item, ok := a.Catalog.Item(itemID)
			if !ok {
				return fmt.Errorf("no menu item %q in the catalog", itemID)
			}
			entry := a.MealPlan.Set(date, slot, item)
			finishSync(ctx, a)
			fmt.Printf("Planned %s for %s %s\n", entry.ItemName, date, slot)
			return nil
		})
	},
}

var mealplanClearCmd = &cobra.Command{
	Use:   "clear <date> <slot>",
	Short: "Clear a planned meal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			a.MealPlan.Clear(args[0], args[1])
			finishSync(ctx, a)
			fmt.Printf("Cleared %s %s\n", args[0], args[1])
			return nil
		})
	},
}

var mealplanAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Fill the week with random dishes per slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		startFlag, _ := cmd.Flags().GetString("start")
		return withApp(func(ctx context.Context, a *app.App) error {
			start, err := planStart(startFlag)
			if err != nil {
				return err
			}
			filled := a.MealPlan.AutoGenerate(a.Catalog.Items(), start, a.Rng)
			finishSync(ctx, a)
			fmt.Printf("Planned %d meals for the week of %s\n", filled, start.Format(store.ISODate))
			return nil
		})
	},
}

func planStart(flag string) (time.Time, error) {
	if flag == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	start, err := time.Parse(store.ISODate, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad start date %q, want YYYY-MM-DD", flag)
	}
	return start, nil
}

func plannedSlot(slot string) bool {
	for _, s := range models.PlannedSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func init() {
	mealplanShowCmd.Flags().String("start", "", "First day of the plan (YYYY-MM-DD, defaults to today)")
	mealplanAutoCmd.Flags().String("start", "", "First day of the plan (YYYY-MM-DD, defaults to today)")

	mealplanCmd.AddCommand(mealplanShowCmd)
	mealplanCmd.AddCommand(mealplanSetCmd)
	mealplanCmd.AddCommand(mealplanClearCmd)
	mealplanCmd.AddCommand(mealplanAutoCmd)
	rootCmd.AddCommand(mealplanCmd)
}
