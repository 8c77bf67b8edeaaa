package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMinimalDigraph(t *testing.T) {
	g := Graph{
		Directed: true,
		Nodes:    []Node{&Plain{ID: 1, Attrs: []Attr{{Key: "color", Value: Name("red")}}}},
		Edges:    []Edge{{From: 1, To: 2, Directed: true}},
	}

	want := "digraph {\n\t1 [color=red];\n\t1 -> 2;\n}\n"
	assert.Equal(t, want, Print(g))
}

func TestPrintHeaderVariants(t *testing.T) {
	base := Graph{
		Nodes: []Node{&Plain{ID: 1}},
		Edges: []Edge{{From: 1, To: 2}},
	}

	tests := []struct {
		name string
		g    Graph
		want string
	}{
		{"undirected", base, "graph {\n"},
		{"named", base.WithID(Name("G")), "graph G {\n"},
		{"strict", base.WithStrict(true), "strict graph {\n"},
		{"strict directed named", func() Graph {
			g := base.WithStrict(true).WithID(Quoted("my graph"))
			g.Directed = true
			return g
		}(), "strict digraph \"my graph\" {\n"},
		{"numeric id", base.WithID(Number(3.14)), "graph 3.14 {\n"},
		{"html id", base.WithID(HTML("i>x</i")), "graph <i>x</i> {\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Print(tt.g)
			assert.True(t, len(out) >= len(tt.want) && out[:len(tt.want)] == tt.want,
				"output %q should start with %q", out, tt.want)
		})
	}
}

func TestPrintGraphAttributeLine(t *testing.T) {
	g := Graph{
		Directed: true,
		Attrs: []Attr{
			{Key: "rankdir", Value: Name("LR")},
			{Key: "label", Value: Quoted("x")},
		},
		Nodes: []Node{&Plain{ID: 1}},
		Edges: []Edge{{From: 1, To: 2, Directed: true}},
	}

	want := "digraph {\n\tgraph [rankdir=LR,label=\"x\"];\n\t1;\n\t1 -> 2;\n}\n"
	assert.Equal(t, want, Print(g))
}

func TestPrintClusterIndentation(t *testing.T) {
	g := Graph{
		Directed: true,
		Nodes: []Node{
			&Cluster{
				Name:  "outer",
				Attrs: []Attr{{Key: "label", Value: Quoted("Outer")}},
				Children: []Node{
					&Plain{ID: 1},
					&Cluster{
						Name:     "inner",
						Children: []Node{&Plain{ID: 2, Attrs: []Attr{{Key: "shape", Value: Name("box")}}}},
					},
				},
			},
		},
		Edges: []Edge{{From: 1, To: 2, Directed: true}},
	}

	want := "digraph {\n" +
		"\tsubgraph cluster_outer {\n" +
		"\t\tgraph [label=\"Outer\"];\n" +
		"\t\t1;\n" +
		"\t\tsubgraph cluster_inner {\n" +
		"\t\t\t2 [shape=box];\n" +
		"\t\t}\n" +
		"\t}\n" +
		"\t1 -> 2;\n" +
		"}\n"
	assert.Equal(t, want, Print(g))
}

func TestPrintEdgeOperators(t *testing.T) {
	g := Graph{
		Directed: true,
		Nodes:    []Node{&Plain{ID: 1}},
		Edges: []Edge{
			{From: 1, To: 2, Directed: true},
			{From: 2, To: 3, Directed: false, Attrs: []Attr{{Key: "weight", Value: Number(2)}}},
		},
	}

	out := Print(g)
	assert.Contains(t, out, "\t1 -> 2;\n")
	assert.Contains(t, out, "\t2 -- 3 [weight=2];\n")
}

func TestPrintDeterminism(t *testing.T) {
	g := mustParse(t, "digraph {\n\tgraph [rankdir=LR];\n\t1 [color=red];\n\t1 -> 2;\n}\n")
	assert.Equal(t, Print(g), Print(g))
}

func TestPrintEndsWithSingleNewline(t *testing.T) {
	g := Graph{Nodes: []Node{&Plain{ID: 1}}, Edges: []Edge{{From: 1, To: 2}}}
	out := Print(g)
	require.True(t, len(out) > 2)
	assert.Equal(t, "}\n", out[len(out)-2:])
}

func TestGraphIDString(t *testing.T) {
	tests := []struct {
		id   GraphID
		want string
	}{
		{Name("G"), "G"},
		{Number(2), "2"},
		{Number(1.5), "1.5"},
		{Number(-0.25), "-0.25"},
		{Quoted(`a "b" \ c`), `"a \"b\" \\ c"`},
		{HTML("b>x</b"), "<b>x</b>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.id.String())
	}
}
