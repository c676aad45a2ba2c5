package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movrin/wavefront/bfs"
)

var (
	pathStart int
	pathEnd   int
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Reconstruct the fewest-hop path between two vertices",
	Long: `path runs a traversal from --start and walks the resulting parent
table back from --end. Unreachable pairs report "no path" and exit zero;
only malformed input is an error.`,
	RunE: runPath,
}

func init() {
	pathCmd.Flags().IntVar(&pathStart, "start", 0, "Start vertex")
	pathCmd.Flags().IntVar(&pathEnd, "end", 0, "End vertex")
	_ = pathCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(pathCmd)
}

// pathJSON is the JSON projection of a path query.
type pathJSON struct {
	Start int   `json:"start"`
	End   int   `json:"end"`
	Found bool  `json:"found"`
	Path  []int `json:"path"`
}

func runPath(cmd *cobra.Command, args []string) error {
	g, err := loadGraph()
	if err != nil {
		return err
	}

	res, err := bfs.BFS(g, pathStart)
	if err != nil {
		return err
	}
	path, err := res.PathTo(pathEnd)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		if len(path) == 0 {
			fmt.Printf("no path from %d to %d\n", pathStart, pathEnd)
			return nil
		}
		fmt.Println(path)
		return nil
	case "json":
		if path == nil {
			path = []int{} // render as an empty array, not null
		}
		return writeJSON(pathJSON{Start: pathStart, End: pathEnd, Found: len(path) > 0, Path: path})
	default:
		return fmt.Errorf("unknown format: %s (must be text or json)", format)
	}
}
