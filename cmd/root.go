package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bhukkad",
	Short: "Food discovery and expense tracking from the terminal",
	Long:  `bhukkad recommends dishes from the local catalog against your dietary, budget and meal-time preferences, and tracks food spend against daily, weekly and monthly caps with best-effort sync to the remote store.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.bhukkad.yaml or $HOME/.bhukkad.yaml)")

	rootCmd.PersistentFlags().String("user-id", "local", "User identity for the remote store")
	rootCmd.PersistentFlags().Bool("remote-enabled", false, "Sync against the remote store")
	rootCmd.PersistentFlags().String("event-log", "console", "Event log destination: console, file or kafka")
	rootCmd.PersistentFlags().String("cache-dir", ".bhukkad", "Local durable cache directory")

	viper.BindPFlag("user_id", rootCmd.PersistentFlags().Lookup("user-id"))
	viper.BindPFlag("remote_enabled", rootCmd.PersistentFlags().Lookup("remote-enabled"))
	viper.BindPFlag("event_log", rootCmd.PersistentFlags().Lookup("event-log"))
	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
}

// withApp runs fn against a fully wired app and tears it down afterwards.
func withApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx := context.Background()
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// finishSync drains pending remote writes and prints any warnings. Warnings
// never fail the command: local state is already updated.
func finishSync(ctx context.Context, a *app.App) {
	for _, w := range a.Sync(ctx) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
