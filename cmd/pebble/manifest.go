package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freekieb7/pebble/config"
	"github.com/freekieb7/pebble/manifest"
)

func newManifestCmd() *cobra.Command {
	var (
		configPath string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Emit the deployment manifest for the API",
		Long: `Manifest maps every registered route to an HTTP trigger event and prints
the declarative artifact the external deploy tool consumes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(configPath, outputFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Configuration file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runManifest(configPath, outputFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	router, err := newApp()
	if err != nil {
		return err
	}

	m := manifest.FromRouter(
		cfg.Manifest.Service,
		cfg.Manifest.Provider,
		cfg.Manifest.Runtime,
		cfg.Manifest.Handler,
		router,
	)
	m.Plugins = cfg.Manifest.Plugins

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create %s: %w", outputFile, err)
		}
		defer f.Close()
		out = f
	}

	return m.Write(out)
}
