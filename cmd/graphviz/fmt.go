package main

import (
	"fmt"
	"os"

	"github.com/mullikine/graphviz/dot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file.dot>",
	Short: "Parse a DOT file and reprint it in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back to the file instead of stdout")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")

	g, err := parseFile(args[0])
	if err != nil {
		return err
	}

	out := dot.Print(g)
	if write {
		if err := os.WriteFile(args[0], []byte(out), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
		return nil
	}
	fmt.Print(out)
	return nil
}

// parseFile reads and parses a DOT file, reporting progress when verbose.
func parseFile(path string) (dot.Graph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return dot.Graph{}, fmt.Errorf("reading graph file: %w", err)
	}

	g, err := dot.Parse(src)
	if err != nil {
		return dot.Graph{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if viper.GetBool("verbose") {
		name := "(unnamed)"
		if g.ID != nil {
			name = g.ID.String()
		}
		fmt.Fprintf(os.Stderr, "Graph: %s (%d nodes, %d edges)\n", name, len(g.Nodes), len(g.Edges))
	}
	return g, nil
}
