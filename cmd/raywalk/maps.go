package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avierno/raywalk/internal/config"
	"github.com/avierno/raywalk/internal/maps"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List all available maps",
	Long: `Shows the built-in maps plus any custom maps found in
~/.raywalk/maps/. A custom map with the same name shadows the built-in one.`,
	Run: runMaps,
}

func runMaps(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := maps.NewLoader(config.UserMapDir(), appCfg.World.CellSize)
	infos, err := loader.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing maps: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No maps available.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Source")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "------")

	for _, info := range infos {
		source := "built-in"
		if !info.Builtin {
			source = info.Path
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, info.ID, source)
	}

	fmt.Println()
	fmt.Println("Run 'raywalk play <id>' to walk a map.")
}
