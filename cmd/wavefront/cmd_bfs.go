package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/movrin/wavefront/bfs"
)

var bfsStart int

var bfsCmd = &cobra.Command{
	Use:   "bfs",
	Short: "Run a breadth-first traversal from a start vertex",
	Long: `bfs explores the graph in non-decreasing distance from --start and
reports the visit order plus the per-vertex level and parent tables.
Unreached vertices carry -1 in both tables.`,
	RunE: runBFS,
}

func init() {
	bfsCmd.Flags().IntVar(&bfsStart, "start", 0, "Start vertex")
	rootCmd.AddCommand(bfsCmd)
}

// bfsJSON is the JSON projection of a traversal result.
type bfsJSON struct {
	Start  int   `json:"start"`
	Order  []int `json:"order"`
	Level  []int `json:"level"`
	Parent []int `json:"parent"`
}

func runBFS(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	res, err := bfs.BFS(g, bfsStart)
	if err != nil {
		return err
	}
	slog.Debug("traversal complete",
		"start", bfsStart,
		"visited", len(res.Order))

	switch format {
	case "text":
		fmt.Printf("Order:  %v\n", res.Order)
		fmt.Printf("Level:  %v\n", res.Level)
		fmt.Printf("Parent: %v\n", res.Parent)
		return nil
	case "json":
		return writeJSON(bfsJSON{Start: res.Start, Order: res.Order, Level: res.Level, Parent: res.Parent})
	default:
		return fmt.Errorf("unknown format: %s (must be text or json)", format)
	}
}
