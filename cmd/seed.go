package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "catalog:seed",
	Short: "Write the built-in catalog collections to the persisted store",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, _, err := openStores()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := catalog.Save(); err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seeded %d categories.\n", len(catalog.Categories()))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
