package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devregctl",
	Short: "Device registry server and administration tool",
	Long: `devregctl runs the device registry API server and manages its
PostgreSQL database (provisioning, schema migrations).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
