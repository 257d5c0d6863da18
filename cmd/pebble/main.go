// Command pebble serves the tutorial API locally and emits the deployment
// manifest the external deploy tool consumes.
//
// Usage:
//
//	pebble serve                  Run the API on a local listener
//	pebble manifest               Print the deployment manifest
//	pebble version                Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pebble",
		Short: "Declarative route registry with JSON dispatch",
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newManifestCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pebble %s\n", version)
		},
	}
}
