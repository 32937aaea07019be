// raywalk is a first-person grid walker for the terminal, rendered with
// ray casting over a 2D map.
//
// Usage:
//
//	raywalk maps              - List available maps
//	raywalk play [map]        - Walk a map (interactive picker if omitted)
//	raywalk serve             - Start SSH server for remote walks
//	raywalk runs [map]        - Show recorded walks
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (0 = from config)
//	--db <path>      - Set database path (default: ~/.raywalk/runs.db)
//	--config <path>  - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raywalk",
	Short: "Raywalk - First-person walks in your terminal",
	Long: `Raywalk renders first-person walks through 2D grid maps directly
in your terminal, using classic ray casting.

Available commands:
  maps     - Show all available maps
  play     - Walk a specific map (or pick one interactively)
  serve    - Start SSH server for remote walks
  runs     - View recorded walks

Examples:
  raywalk maps
  raywalk play corridor
  raywalk play
  raywalk serve --ssh :2222
  raywalk runs corridor`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raywalk/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
