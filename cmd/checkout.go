package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucsky/cuid"
	"github.com/spf13/cobra"

	"github.com/bhukkad-app/bhukkad/internal/app"
	"github.com/bhukkad-app/bhukkad/internal/eventlog"
	"github.com/bhukkad-app/bhukkad/internal/payment"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Pay for an order through the payment gateway",
	Long: `Initiates a checkout against the configured payment gateway. A declined
payment is reported with the gateway's reason and is never retried
automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, _ := cmd.Flags().GetFloat64("amount")
		reference, _ := cmd.Flags().GetString("reference")
		item, _ := cmd.Flags().GetString("item")

		if amount <= 0 {
			return fmt.Errorf("amount must be positive, got %.2f", amount)
		}

		return withApp(func(ctx context.Context, a *app.App) error {
			if a.Config.GatewayURL == "" {
				return errors.New("no payment gateway configured, set gateway_url")
			}
			if reference == "" {
				reference = cuid.New()
			}

			req := payment.CheckoutRequest{
				Amount:    amount,
				Currency:  a.Config.Currency,
				Reference: reference,
			}
			if item != "" {
				req.LineItems = []payment.LineItem{{Name: item, Amount: amount, Quantity: 1}}
			}

			gw := payment.NewGateway(a.Config.GatewayURL, a.Config.GatewayTimeout)
			result, err := gw.Checkout(req)
			if err != nil {
				a.Events.Record(eventlog.EventPaymentFailed, map[string]any{
					"reference": reference,
					"amount":    amount,
					"error":     err.Error(),
				})
				var declined *payment.FailureError
				if errors.As(err, &declined) {
					return fmt.Errorf("%s (reference %s)", declined.Error(), reference)
				}
				return err
			}

			a.Events.Record(eventlog.EventPaymentCompleted, result)
			fmt.Printf("Payment of %s%.2f completed\n", symbol(a.Config.Currency), result.Amount)
			fmt.Printf("  order:   %s\n", result.OrderRef)
			fmt.Printf("  payment: %s\n", result.PaymentRef)
			return nil
		})
	},
}

func init() {
	checkoutCmd.Flags().Float64("amount", 0, "Amount to charge")
	checkoutCmd.Flags().String("reference", "", "Order reference (generated when empty)")
	checkoutCmd.Flags().String("item", "", "Line item name")
	checkoutCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(checkoutCmd)
}
