package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/freekieb7/pebble/config"
	"github.com/freekieb7/pebble/http"
	"github.com/freekieb7/pebble/telemetry"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the API on a local listener",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "Configuration file")

	return cmd
}

func runServe(configPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Server.Name, cfg.Telemetry.Endpoint)
		if err != nil {
			return fmt.Errorf("telemetry setup: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("telemetry shutdown: %v", err)
			}
		}()
	}

	router, err := newApp()
	if err != nil {
		return err
	}

	server := http.NewServer(cfg.Server.Name)
	server.Router = router

	return server.ListenAndServe(ctx, cfg.Server.Address)
}
