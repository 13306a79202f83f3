package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spritewrap/internal/config"
	"github.com/vovakirdan/spritewrap/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the demo",
	Long: `Run the demo with the configured backend.

Config search order:
  --config path
  ~/.spritewrap/config.yaml
  ./configs/spritewrap.yaml
  built-in defaults

Examples:
  spritewrap play
  spritewrap play --backend tui`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	if flagBackend != "" {
		cfg.Backend = flagBackend
	}

	// Check if backend exists
	if !registry.Exists(cfg.Backend) {
		return fmt.Errorf("unknown backend %q (run 'spritewrap backends' to list them)", cfg.Backend)
	}

	backend, err := registry.Create(cfg.Backend)
	if err != nil {
		return err
	}

	session := registry.NewSession(cfg, logger, os.Stdout)
	if err := backend.Run(session); err != nil {
		return fmt.Errorf("%s backend: %w", backend.Name(), err)
	}

	logger.Info("bye", "ticks", session.Demo.Ticks())
	return nil
}
