package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/budget"
	"github.com/bhukkad-app/bhukkad/internal/engine"
	"github.com/bhukkad-app/bhukkad/internal/export"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and inspect food spend",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: `Records an expense locally first, then syncs it to the remote store on a
best-effort basis. The record stays visible even when the remote write fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetFloat64("amount")
		category, _ := cmd.Flags().GetString("category")
		meal, _ := cmd.Flags().GetString("meal")
		cuisine, _ := cmd.Flags().GetString("cuisine")
		vendor, _ := cmd.Flags().GetString("vendor")
		note, _ := cmd.Flags().GetString("note")
		splitTotal, _ := cmd.Flags().GetFloat64("split-total")
		partySize, _ := cmd.Flags().GetInt("party-size")

		if amount <= 0 {
			return fmt.Errorf("amount must be positive, got %.2f", amount)
		}
		if !models.ValidCategory(category) {
			return fmt.Errorf("unknown category %q, want one of %s", category, strings.Join(models.ExpenseCategories, ", "))
		}
		if meal == "" {
			meal = engine.MealSlotForTime(time.Now())
		} else if !models.ValidMealSlot(meal) {
			return fmt.Errorf("unknown meal slot %q, want one of %s", meal, strings.Join(models.MealSlots, ", "))
		}
		if len(note) > models.MaxNoteLength {
			return fmt.Errorf("note exceeds %d characters", models.MaxNoteLength)
		}

		var split *models.SplitBill
		if splitTotal > 0 {
			if partySize < 2 {
				return fmt.Errorf("party size must be at least 2 to split a bill, got %d", partySize)
			}
			split = &models.SplitBill{Total: splitTotal, PartySize: partySize}
		}

		return withApp(func(ctx context.Context, a *app.App) error {
			e := a.Ledger.Add(models.ExpenseDraft{
				Amount:   amount,
				Category: category,
				MealType: meal,
				Cuisine:  cuisine,
				Vendor:   vendor,
				Note:     note,
				Split:    split,
			})
			finishSync(ctx, a)
			fmt.Printf("Recorded %s%.2f (%s, %s) as %s\n", symbol(a.Config.Currency), e.Amount, e.Category, e.MealType, e.ID)
			if e.Split != nil {
				fmt.Printf("Your share of the %s%.2f bill split %d ways: %s%.2f\n",
					symbol(a.Config.Currency), e.Split.Total, e.Split.PartySize, symbol(a.Config.Currency), e.Split.Share)
			}
			return nil
		})
	},
}

var expenseUpdateCmd = &cobra.Command{
	Use:   "update <expense-id>",
	Short: "Edit fields of a recorded expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetFloat64("amount")
		category, _ := cmd.Flags().GetString("category")
		meal, _ := cmd.Flags().GetString("meal")
		cuisine, _ := cmd.Flags().GetString("cuisine")
		vendor, _ := cmd.Flags().GetString("vendor")
		note, _ := cmd.Flags().GetString("note")

		var patch models.ExpensePatch
		if cmd.Flags().Changed("amount") {
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %.2f", amount)
			}
			patch.Amount = &amount
		}
		if cmd.Flags().Changed("category") {
			if !models.ValidCategory(category) {
				return fmt.Errorf("unknown category %q, want one of %s", category, strings.Join(models.ExpenseCategories, ", "))
			}
			patch.Category = &category
		}
		if cmd.Flags().Changed("meal") {
			if !models.ValidMealSlot(meal) {
				return fmt.Errorf("unknown meal slot %q, want one of %s", meal, strings.Join(models.MealSlots, ", "))
			}
			patch.MealType = &meal
		}
		if cmd.Flags().Changed("cuisine") {
			patch.Cuisine = &cuisine
		}
		if cmd.Flags().Changed("vendor") {
			patch.Vendor = &vendor
		}
		if cmd.Flags().Changed("note") {
			if len(note) > models.MaxNoteLength {
				return fmt.Errorf("note exceeds %d characters", models.MaxNoteLength)
			}
			patch.Note = &note
		}

		return withApp(func(ctx context.Context, a *app.App) error {
			if err := a.Ledger.Update(args[0], patch); err != nil {
				return err
			}
			finishSync(ctx, a)
			fmt.Printf("Updated %s\n", args[0])
			return nil
		})
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent expenses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withApp(func(ctx context.Context, a *app.App) error {
			expenses := a.Ledger.Recent(limit)
			if len(expenses) == 0 {
				fmt.Println("No expenses recorded yet.")
				return nil
			}
			cur := symbol(a.Config.Currency)
			for _, e := range expenses {
				pending := ""
				if e.SyncState == models.ExpensePending {
					pending = " (pending sync)"
				}
				fmt.Printf("%s  %s%8.2f  %-10s %-10s %s%s\n",
					e.SpentAt.Format("2006-01-02 15:04"), cur, e.Amount, e.Category, e.MealType, e.ID, pending)
			}
			return nil
		})
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <expense-id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			if err := a.Ledger.Delete(args[0]); err != nil {
				return err
			}
			finishSync(ctx, a)
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		})
	},
}

var expenseSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spend against caps, with category and cuisine breakdowns",
	RunE: func(cmd *cobra.Command, args []string) error {
		topN, _ := cmd.Flags().GetInt("top")
		return withApp(func(ctx context.Context, a *app.App) error {
			now := time.Now()
			cur := symbol(a.Config.Currency)

			fmt.Println("Budget status:")
			for _, s := range budget.Summaries(a.Ledger.Snapshot(), a.Budget, now) {
				printSummary(cur, s)
			}

			printBreakdown(cur, "By category", budget.TopN(a.Ledger.ByCategory(), topN))
			printBreakdown(cur, "By cuisine", budget.TopN(a.Ledger.ByCuisine(), topN))
			printBreakdown(cur, "By meal", budget.TopN(a.Ledger.ByMealType(), topN))
			return nil
		})
	},
}

var expenseExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV, JSON or Parquet",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case export.FormatCSV, export.FormatJSON, export.FormatParquet:
		default:
			return fmt.Errorf("unknown format %q, want csv, json or parquet", format)
		}
		return withApp(func(ctx context.Context, a *app.App) error {
			x := export.NewExporter(a.Config)
			path, err := x.Export(format, a.Ledger.Snapshot(), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Exported %d expenses to %s\n", a.Ledger.Len(), path)
			return nil
		})
	},
}

func printSummary(cur string, s models.PeriodSummary) {
	fmt.Printf("  %-8s %s%.2f of %s%.2f (%.1f%%, %s)", s.Period, cur, s.Spent, cur, s.Cap, s.PercentUsed, s.Status)
	if s.Remaining < 0 {
		fmt.Printf("  over by %s%.2f", cur, -s.Remaining)
	}
	fmt.Println()
}

func printBreakdown(cur, title string, groups []models.GroupTotal) {
	if len(groups) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, g := range groups {
		fmt.Printf("  %-16s %s%.2f\n", g.Key, cur, g.Amount)
	}
}

func init() {
	expenseAddCmd.Flags().Float64("amount", 0, "Amount spent")
	expenseAddCmd.Flags().String("category", models.CategoryDineIn, "Expense category")
	expenseAddCmd.Flags().String("meal", "", "Meal slot (defaults to the current one)")
	expenseAddCmd.Flags().String("cuisine", "", "Cuisine")
	expenseAddCmd.Flags().String("vendor", "", "Restaurant or vendor name")
	expenseAddCmd.Flags().String("note", "", "Free-text note")
	expenseAddCmd.Flags().Float64("split-total", 0, "Total of a shared bill to split evenly")
	expenseAddCmd.Flags().Int("party-size", 0, "Number of people sharing the bill")
	expenseAddCmd.MarkFlagRequired("amount")

	expenseUpdateCmd.Flags().Float64("amount", 0, "New amount")
	expenseUpdateCmd.Flags().String("category", "", "New category")
	expenseUpdateCmd.Flags().String("meal", "", "New meal slot")
	expenseUpdateCmd.Flags().String("cuisine", "", "New cuisine")
	expenseUpdateCmd.Flags().String("vendor", "", "New vendor")
	expenseUpdateCmd.Flags().String("note", "", "New note")

	expenseListCmd.Flags().Int("limit", 20, "Maximum number of expenses to show")
	expenseSummaryCmd.Flags().Int("top", 5, "Entries per breakdown")
	expenseExportCmd.Flags().String("format", export.FormatCSV, "Export format: csv, json or parquet")

	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseUpdateCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	expenseCmd.AddCommand(expenseSummaryCmd)
	expenseCmd.AddCommand(expenseExportCmd)
	rootCmd.AddCommand(expenseCmd)
}
