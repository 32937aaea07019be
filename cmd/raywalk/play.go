package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avierno/raywalk/internal/config"
	"github.com/avierno/raywalk/internal/core"
	"github.com/avierno/raywalk/internal/game"
	"github.com/avierno/raywalk/internal/maps"
	"github.com/avierno/raywalk/internal/platform/tui"
	"github.com/avierno/raywalk/internal/storage"
)

var flagMapFile string

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Walk a map",
	Long: `Start a first-person walk through the specified map. Without an
argument an interactive map picker opens.

Controls:
  W/Up, S/Down     - Walk forward/backward
  A/Left, D/Right  - Turn
  M                - Toggle minimap
  P                - Pause
  R                - Restart from spawn
  Q/Ctrl+C         - Quit

Examples:
  raywalk play corridor
  raywalk play
  raywalk play --map-file ./my-map.map
  raywalk play labyrinth --config ./my-config.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Path to a map file outside the search dirs")
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := maps.NewLoader(config.UserMapDir(), appCfg.World.CellSize)

	// Get terminal size early for the picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := appCfg.Viewport.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
	}

	m, cfg, ok := resolveMap(loader, args, cfg)
	if !ok {
		return
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the walk still works
		store = nil
	}

	runErr := tui.Run(game.NewWalker(appCfg, m), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running walk: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveMap picks the map to walk: explicit file, named map, or the
// interactive picker. Returns ok=false when the user backed out.
func resolveMap(loader *maps.Loader, args []string, cfg core.RuntimeConfig) (*maps.Map, core.RuntimeConfig, bool) {
	if flagMapFile != "" {
		m, err := loader.LoadFile(flagMapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading map file: %v\n", err)
			os.Exit(1)
		}
		return m, cfg, true
	}

	if len(args) == 1 {
		m, err := loader.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'raywalk maps' to see available maps.")
			os.Exit(1)
		}
		return m, cfg, true
	}

	items, err := loader.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing maps: %v\n", err)
		os.Exit(1)
	}

	result, err := tui.RunMenu(items, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if result.Quit {
		return nil, cfg, false
	}

	m, err := loader.Load(result.MapID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return m, result.Config, true
}
