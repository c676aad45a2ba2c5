// Command wavefront loads adjacency-list graphs from YAML or HCL
// definitions and answers breadth-first queries about them.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/movrin/wavefront/core"
	"github.com/movrin/wavefront/graphio"
)

var (
	// Global flags
	inputPath string
	format    string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "wavefront",
	Short: "Breadth-first queries over adjacency-list graphs",
	Long: `wavefront loads a graph definition (YAML or HCL) and runs breadth-first
queries against it: full traversals, component discovery, and hop-minimal
path reconstruction.

Examples:
  # Dump the adjacency listing
  wavefront show --input graph.yaml

  # Traverse from vertex 0
  wavefront bfs --input graph.yaml --start 0

  # Component partition as JSON
  wavefront components --input graph.hcl --format json

  # Fewest-hop path between two vertices
  wavefront path --input graph.yaml --start 0 --end 4`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Graph definition file (.yaml, .yml, or .hcl)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "Output format: text, json (show also accepts dot)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})))
	}
}

// loadGraph reads the definition named by --input.
func loadGraph() (*core.Graph, error) {
	g, err := graphio.LoadFile(inputPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("graph loaded",
		"path", inputPath,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"directed", g.Directed())
	return g, nil
}

// writeJSON renders v as indented JSON on stdout.
func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
