package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/budget"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage spending caps",
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show spend against the daily, weekly and monthly caps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			cur := symbol(a.Config.Currency)
			for _, s := range budget.Summaries(a.Ledger.Snapshot(), a.Budget, time.Now()) {
				printSummary(cur, s)
			}
			return nil
		})
	},
}

var budgetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the spending caps",
	RunE: func(cmd *cobra.Command, args []string) error {
		daily, _ := cmd.Flags().GetFloat64("daily")
		weekly, _ := cmd.Flags().GetFloat64("weekly")
		monthly, _ := cmd.Flags().GetFloat64("monthly")

		return withApp(func(ctx context.Context, a *app.App) error {
			cfg := a.Budget
			if cmd.Flags().Changed("daily") {
				cfg.Daily = daily
			}
			if cmd.Flags().Changed("weekly") {
				cfg.Weekly = weekly
			}
			if cmd.Flags().Changed("monthly") {
				cfg.Monthly = monthly
			}
			if cfg.Daily <= 0 || cfg.Weekly <= 0 || cfg.Monthly <= 0 {
				return fmt.Errorf("caps must be positive: daily %.2f, weekly %.2f, monthly %.2f", cfg.Daily, cfg.Weekly, cfg.Monthly)
			}
			cfg.UserID = a.Config.UserID
			if err := a.SaveBudget(cfg); err != nil {
				return err
			}
			finishSync(ctx, a)
			cur := symbol(a.Config.Currency)
			fmt.Printf("Caps set: %s%.2f/day, %s%.2f/week, %s%.2f/month\n", cur, cfg.Daily, cur, cfg.Weekly, cur, cfg.Monthly)
			return nil
		})
	},
}

func init() {
	budgetSetCmd.Flags().Float64("daily", 0, "Daily cap")
	budgetSetCmd.Flags().Float64("weekly", 0, "Weekly cap")
	budgetSetCmd.Flags().Float64("monthly", 0, "Monthly cap")

	budgetCmd.AddCommand(budgetStatusCmd)
	budgetCmd.AddCommand(budgetSetCmd)
	rootCmd.AddCommand(budgetCmd)
}
