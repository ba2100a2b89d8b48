package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage saved dishes",
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add <item-id>",
	Short: "Save a dish to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			item, ok := a.Catalog.Item(args[0])
			if !ok {
				return fmt.Errorf("no menu item %q in the catalog", args[0])
			}
			fav := a.Favorites.Add(item)
			finishSync(ctx, a)
			fmt.Printf("Saved %s\n", fav.Name)
			return nil
		})
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a dish from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			a.Favorites.Remove(args[0])
			finishSync(ctx, a)
			fmt.Printf("Removed %s\n", args[0])
			return nil
		})
	},
}

var favoriteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved dishes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			favs := a.Favorites.List()
			if len(favs) == 0 {
				fmt.Println("No favorites yet.")
				return nil
			}
			cur := symbol(a.Config.Currency)
			for _, f := range favs {
				fmt.Printf("  %-32s %s%.0f  [%s]\n", f.Name, cur, f.PriceMax, f.ItemID)
			}
			return nil
		})
	},
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
	favoriteCmd.AddCommand(favoriteListCmd)
	rootCmd.AddCommand(favoriteCmd)
}
