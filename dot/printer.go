package dot

import (
	"fmt"
	"strings"
)

// Print renders g deterministically as DOT text. Printing is total: every
// well-formed Graph value is printable, and printing the same value twice
// yields byte-identical output.
//
// Re-parsing the output yields a structurally equal Graph, except that
// clusters are printed as subgraph blocks the parser does not accept.
func Print(g Graph) string {
	var b strings.Builder

	if g.Strict {
		b.WriteString("strict ")
	}
	if g.Directed {
		b.WriteString("digraph")
	} else {
		b.WriteString("graph")
	}
	if g.ID != nil {
		b.WriteByte(' ')
		b.WriteString(g.ID.String())
	}
	b.WriteString(" {\n")

	if len(g.Attrs) > 0 {
		b.WriteString("\tgraph [")
		writeAttrList(&b, g.Attrs)
		b.WriteString("];\n")
	}

	for _, n := range g.Nodes {
		writeNode(&b, n, 1)
	}
	for _, e := range g.Edges {
		writeEdge(&b, e)
	}

	b.WriteString("}\n")
	return b.String()
}

func (g Graph) String() string { return Print(g) }

// writeNode renders a node or cluster at the given nesting depth. Every
// line produced by a cluster's descendants carries one extra leading tab
// per level.
func writeNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("\t", depth)
	switch n := n.(type) {
	case *Plain:
		fmt.Fprintf(b, "%s%d", indent, n.ID)
		if len(n.Attrs) > 0 {
			b.WriteString(" [")
			writeAttrList(b, n.Attrs)
			b.WriteByte(']')
		}
		b.WriteString(";\n")
	case *Cluster:
		fmt.Fprintf(b, "%ssubgraph cluster_%s {\n", indent, n.Name)
		if len(n.Attrs) > 0 {
			b.WriteString(indent)
			b.WriteString("\tgraph [")
			writeAttrList(b, n.Attrs)
			b.WriteString("];\n")
		}
		for _, child := range n.Children {
			writeNode(b, child, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("}\n")
	}
}

func writeEdge(b *strings.Builder, e Edge) {
	op := "--"
	if e.Directed {
		op = "->"
	}
	fmt.Fprintf(b, "\t%d %s %d", e.From, op, e.To)
	if len(e.Attrs) > 0 {
		b.WriteString(" [")
		writeAttrList(b, e.Attrs)
		b.WriteByte(']')
	}
	b.WriteString(";\n")
}

func writeAttrList(b *strings.Builder, attrs []Attr) {
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
}
