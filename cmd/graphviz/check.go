package main

import (
	"fmt"
	"os"

	"github.com/mullikine/graphviz/dot"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.dot>",
	Short: "Validate attribute usage in a DOT file",
	Long:  "Parse a DOT file and report every attribute attached to an entity outside that attribute's permitted domain.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := parseFile(args[0])
	if err != nil {
		return err
	}

	v := dot.Validate(g)
	if v.Empty() {
		fmt.Fprintf(os.Stderr, "%s: OK\n", args[0])
		return nil
	}

	for _, a := range v.Graph {
		fmt.Fprintf(os.Stderr, "graph: attribute %s not usable on graphs\n", a)
	}
	for _, nv := range v.Nodes {
		switch n := nv.Node.(type) {
		case *dot.Plain:
			fmt.Fprintf(os.Stderr, "node %d: attribute %s not usable on nodes\n", n.ID, nv.Attr)
		case *dot.Cluster:
			fmt.Fprintf(os.Stderr, "cluster %s: attribute %s not usable on clusters\n", n.Name, nv.Attr)
		}
	}
	for _, ev := range v.Edges {
		op := "--"
		if ev.Edge.Directed {
			op = "->"
		}
		fmt.Fprintf(os.Stderr, "edge %d %s %d: attribute %s not usable on edges\n", ev.Edge.From, op, ev.Edge.To, ev.Attr)
	}

	return fmt.Errorf("%d invalid attribute(s)", len(v.Graph)+len(v.Nodes)+len(v.Edges))
}
