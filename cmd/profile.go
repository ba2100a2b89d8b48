package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage dietary and budget preferences",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preference profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			p := a.Profile
			if p == nil {
				fmt.Println("No profile yet. Set one with `bhukkad profile set`.")
				return nil
			}
			cur := symbol(a.Config.Currency)
			fmt.Printf("Dietary:   %s\n", p.DietaryType)
			fmt.Printf("Cuisines:  %s\n", strings.Join(p.PreferredCuisines, ", "))
			fmt.Printf("Spice:     %s\n", p.SpiceTolerance)
			fmt.Printf("Budget:    %s%.0f-%.0f per meal\n", cur, p.BudgetMin, p.BudgetMax)
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the preference profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dietary, _ := cmd.Flags().GetString("dietary")
		cuisines, _ := cmd.Flags().GetStringSlice("cuisines")
		spice, _ := cmd.Flags().GetString("spice")
		budgetMin, _ := cmd.Flags().GetFloat64("budget-min")
		budgetMax, _ := cmd.Flags().GetFloat64("budget-max")

		return withApp(func(ctx context.Context, a *app.App) error {
			p := models.PreferenceProfile{UserID: a.Config.UserID, Locale: a.Config.Locale}
			if a.Profile != nil {
				p = *a.Profile
			}
			if cmd.Flags().Changed("dietary") {
				if !models.ValidDietaryType(dietary) {
					return fmt.Errorf("unknown dietary type %q, want one of %s", dietary, strings.Join(models.DietaryTypes, ", "))
				}
				p.DietaryType = dietary
			}
			if cmd.Flags().Changed("cuisines") {
				p.PreferredCuisines = cuisines
			}
			if cmd.Flags().Changed("spice") {
				if models.SpiceRank(spice) < 0 {
					return fmt.Errorf("unknown spice level %q", spice)
				}
				p.SpiceTolerance = spice
			}
			if cmd.Flags().Changed("budget-min") {
				p.BudgetMin = budgetMin
			}
			if cmd.Flags().Changed("budget-max") {
				p.BudgetMax = budgetMax
			}
			if p.BudgetMax > 0 && p.BudgetMin > p.BudgetMax {
				return fmt.Errorf("budget range inverted: min %.2f > max %.2f", p.BudgetMin, p.BudgetMax)
			}
			if err := a.SaveProfile(p); err != nil {
				return err
			}
			finishSync(ctx, a)
			fmt.Println("Profile saved.")
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().String("dietary", "", "Dietary type")
	profileSetCmd.Flags().StringSlice("cuisines", nil, "Preferred cuisines, comma separated")
	profileSetCmd.Flags().String("spice", "", "Spice tolerance")
	profileSetCmd.Flags().Float64("budget-min", 0, "Per-meal budget floor")
	profileSetCmd.Flags().Float64("budget-max", 0, "Per-meal budget ceiling")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
