package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/movrin/wavefront/graphio"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the graph's adjacency listing",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	switch format {
	case "text":
		return g.WriteAdjacency(os.Stdout)
	case "dot":
		return graphio.WriteDOT(os.Stdout, g)
	case "json":
		return graphio.WriteJSON(os.Stdout, g)
	default:
		return fmt.Errorf("unknown format: %s (must be text, dot, or json)", format)
	}
}
