package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mullikine/graphviz/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <file.dot>",
	Short: "Render a DOT file with an external layout engine",
	Long:  "Parse a DOT file, pipe it to a Graphviz layout engine, and write the laid-out output. The engine defaults to 'dot' for directed graphs and 'neato' for undirected ones.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("format", "T", "png", "Output format selector")
	renderCmd.Flags().StringP("engine", "e", "", "Layout engine (default: chosen by graph directedness)")
	renderCmd.Flags().StringP("output", "o", "", "Output file (default: input name with the format's extension)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	engineName, _ := cmd.Flags().GetString("engine")
	output, _ := cmd.Flags().GetString("output")

	g, err := parseFile(args[0])
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	engine := render.CommandFor(g)
	if engineName != "" {
		engine, err = render.ParseEngine(engineName)
		if err != nil {
			return err
		}
	}

	if output == "" {
		output = strings.TrimSuffix(args[0], ".dot")
	}

	path, err := render.RenderToFile(cmd.Context(), g, engine, format, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
