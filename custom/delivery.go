// Package custom holds site-specific extensions wired through the
// registries: graphql fields, CLI commands, cron jobs and plain routes.
package custom

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"mbs.GO/api"
	"mbs.GO/cmd"
	"mbs.GO/cron"
	gqlregistry "mbs.GO/graphql/registry"
	orderService "mbs.GO/service/order"
)

func init() {
	// GraphQL extension: delivery fee table for the checkout UI.
	gqlregistry.Register("deliveryFees", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return map[string]float64{
			"ground":  orderService.GroundFee,
			"airdrop": orderService.AirdropFee,
		}, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "delivery:fees",
		Short: "Print the delivery fee table",
		Run: func(c *cobra.Command, args []string) {
			fmt.Printf("ground:  %.2f\nairdrop: %.2f\n", orderService.GroundFee, orderService.AirdropFee)
		},
	})

	// Cron job
	cron.Register("heartbeat", "@every 5m", func(args ...string) {
		fmt.Println("custom cron: heartbeat")
	})

	// HTTP route
	api.RegisterGET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
