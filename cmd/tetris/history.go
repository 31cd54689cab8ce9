package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recent runs",
	Long: `Display the most recent journaled runs.

A run ends when the board fills up and is wiped, when it is restarted,
or when the player leaves. Without a variant, runs of all variants are shown.

Examples:
  tetris history
  tetris history tetris_narrow
  tetris history --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
}

func runHistory(_ *cobra.Command, args []string) error {
	gameID := ""
	title := "all variants"
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q, run 'tetris list' to see available variants", gameID)
		}
		title = registry.Title(gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(gameID, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-14s  %-14s  %-10s  %8s  %6s  %7s  %8s  %s\n",
		"When", "Variant", "Player", "Score", "Lines", "Pieces", "Time", "End")
	fmt.Printf("  %-14s  %-14s  %-10s  %8s  %6s  %7s  %8s  %s\n",
		"----", "-------", "------", "-----", "-----", "------", "----", "---")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-14s  %-14s  %-10s  %8s  %6s  %7s  %8s  %s\n",
			humanize.Time(r.CreatedAt),
			r.GameID,
			player,
			humanize.Comma(int64(r.Score)),
			humanize.Comma(int64(r.Lines)),
			humanize.Comma(int64(r.Pieces)),
			r.Duration.Round(time.Second),
			r.EndReason,
		)
	}

	if gameID != "" {
		stats, err := store.GameStats(gameID)
		if err == nil && stats.RunsCount > 0 {
			fmt.Println()
			fmt.Printf("%s runs, %s lines, %s pieces in total\n",
				humanize.Comma(int64(stats.RunsCount)),
				humanize.Comma(stats.TotalLines),
				humanize.Comma(stats.TotalPieces),
			)
		}
	}
	return nil
}
