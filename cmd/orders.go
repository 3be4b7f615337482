package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	orderEntity "mbs.GO/model/entity/order"
)

var ordersStatus string

var ordersListCmd = &cobra.Command{
	Use:   "orders:list",
	Short: "List persisted orders",
	Run: func(cmd *cobra.Command, args []string) {
		_, orders, err := openStores()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCUSTOMER\tSTATUS\tTYPE\tTOTAL\tDATE")
		for _, o := range orders.List() {
			if ordersStatus != "" && o.Status != orderEntity.Status(ordersStatus) {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n",
				o.ID, o.CustomerName, o.Status, o.DeliveryType, o.Total, o.OrderDate)
		}
		w.Flush()
	},
}

func init() {
	ordersListCmd.Flags().StringVarP(&ordersStatus, "status", "s", "", "Filter by status")
	rootCmd.AddCommand(ordersListCmd)
}
