package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/movrin/wavefront/bfs"
)

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Partition the graph into reachability components",
	RunE:  runComponents,
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}

// componentsJSON is the JSON projection of a component partition.
type componentsJSON struct {
	Count      int     `json:"count"`
	Components [][]int `json:"components"`
}

func runComponents(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return err
	}
	slog.Debug("partition complete", "components", len(comps))

	switch format {
	case "text":
		for i, comp := range comps {
			fmt.Printf("component %d: %v\n", i, comp)
		}
		return nil
	case "json":
		return writeJSON(componentsJSON{Count: len(comps), Components: comps})
	default:
		return fmt.Errorf("unknown format: %s (must be text or json)", format)
	}
}
