// spritewrap is a minimal interactive demo: a sprite moved with the arrow
// keys wraps around the window edges while the frame rate is reported to
// stdout every few seconds.
//
// Usage:
//
//	spritewrap               - Run the demo with the configured backend
//	spritewrap play          - Same as above
//	spritewrap backends      - List available rendering backends
//
// Global flags:
//
//	--config <path>    - Load configuration from a YAML file
//	--backend <name>   - Override the configured backend (sdl, ebiten, tui)
//	--verbose          - Enable debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/spritewrap/internal/platform/ebitenwindow"
	_ "github.com/vovakirdan/spritewrap/internal/platform/sdlwindow"
	_ "github.com/vovakirdan/spritewrap/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagBackend string
	flagVerbose bool
)

// logger writes diagnostics to stderr; stdout carries the FPS report.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "spritewrap",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spritewrap",
	Short: "Move a sprite around a wrap-around window and watch the frame rate",
	Long: `spritewrap opens an 800x600 window with a 32x32 white sprite.

Controls:
  Arrow keys  - Move (4 px per frame)
  Esc         - Quit

Every 5 seconds the average frame rate is printed as "<rate> FPS".

Examples:
  spritewrap
  spritewrap --backend ebiten
  spritewrap play --backend tui
  spritewrap --config ./my-spritewrap.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Rendering backend (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
}
