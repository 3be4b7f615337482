//go:build cli
// +build cli

package main

import (
	_ "mbs.GO/custom"

	"mbs.GO/cmd"
	"mbs.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
