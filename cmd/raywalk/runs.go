package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avierno/raywalk/internal/platform/tui"
	"github.com/avierno/raywalk/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs [map]",
	Short: "Show recorded walks",
	Long: `Display recorded walks. With a map argument the last 10 runs are
printed; without one an interactive browser opens.

Examples:
  raywalk runs corridor
  raywalk runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printRuns(store, args[0])
		return
	}

	mapIDs, err := store.MapIDs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(mapIDs) == 0 {
		fmt.Println("No walks recorded yet.")
		fmt.Println()
		fmt.Println("Finish 'raywalk play <map>' to record the first one!")
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunRuns(store, mapIDs, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printRuns writes a plain table of the most recent runs for one map.
func printRuns(store *storage.Store, mapID string) {
	runs, err := store.RecentRuns(mapID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recorded walks - %s\n", mapID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No walks recorded yet.")
		fmt.Println()
		fmt.Printf("Finish 'raywalk play %s' to record the first one!\n", mapID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %s\n", "Rank", "Steps", "Bumps", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		secs := int(r.Duration.Seconds())
		timeStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-7d  %-8s  %s\n", i+1, r.Steps, r.Collisions, timeStr, dateStr)
	}

	count, err := store.RunCount(mapID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Total walks: %d\n", count)
	}
}
