package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"mbs.GO/config"
)

var rootCmd = &cobra.Command{
	Use:   "mbs",
	Short: "Roofing supply storefront backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		banner()
		_ = cmd.Help()
	},
}

func banner() {
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("MBS Supply", fonts[rand.Intn(len(fonts))], true)
	fig.Print()
	fmt.Println()
}

// Execute runs the CLI. Registered commands from custom packages are
// applied before dispatch.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
