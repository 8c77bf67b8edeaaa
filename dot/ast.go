package dot

import (
	"strconv"
	"strings"
)

// IDKind discriminates the GraphID tagged union.
type IDKind int

const (
	IDName   IDKind = iota // bare identifier, printed as-is
	IDNumber               // floating-point literal
	IDQuoted               // string requiring surrounding quotes on output
	IDHTML                 // HTML-like/URL string, printed inside angle brackets
)

// GraphID is a graph identifier or attribute value. Kind determines which
// payload field is populated and which quoting rule applies on output.
type GraphID struct {
	Kind IDKind
	Str  string  // populated for IDName, IDQuoted, IDHTML
	Num  float64 // populated for IDNumber
}

// Name returns a bare-identifier GraphID.
func Name(s string) GraphID { return GraphID{Kind: IDName, Str: s} }

// Number returns a numeric GraphID.
func Number(f float64) GraphID { return GraphID{Kind: IDNumber, Num: f} }

// Quoted returns a GraphID printed with surrounding quotes and escaping.
func Quoted(s string) GraphID { return GraphID{Kind: IDQuoted, Str: s} }

// HTML returns an opaque HTML-like GraphID printed inside angle brackets.
func HTML(s string) GraphID { return GraphID{Kind: IDHTML, Str: s} }

// String renders the identifier with its variant's quoting rule.
func (id GraphID) String() string {
	switch id.Kind {
	case IDNumber:
		return strconv.FormatFloat(id.Num, 'f', -1, 64)
	case IDQuoted:
		return `"` + escapeQuoted(id.Str) + `"`
	case IDHTML:
		return "<" + id.Str + ">"
	default:
		return id.Str
	}
}

func escapeQuoted(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Attr is a key=value pair attached to a graph, cluster, node, or edge.
// The value reuses the GraphID variants so it carries its own print rule.
// Attributes are opaque to the parser and printer; only the validator
// inspects key domains.
type Attr struct {
	Key   string
	Value GraphID
}

func (a Attr) String() string { return a.Key + "=" + a.Value.String() }

// A Node is one entry in a graph or cluster body: either a *Plain node or
// a nested *Cluster. Traversal code must handle both variants.
type Node interface {
	isNode()
}

// Plain is a node with an integer identifier and its attribute list.
// Duplicate IDs within a scope are permitted and never merged.
type Plain struct {
	ID    int
	Attrs []Attr
}

func (*Plain) isNode() {}

// Cluster is a named container of nodes and nested clusters, printed as a
// subgraph block. Containment is a tree of unbounded depth.
type Cluster struct {
	Name     string
	Attrs    []Attr
	Children []Node
}

func (*Cluster) isNode() {}

// Edge connects two node IDs. Directed selects the edge's own operator
// (-> vs --) independently of the enclosing graph's directedness.
type Edge struct {
	From     int
	To       int
	Directed bool
	Attrs    []Attr
}

// Graph is the complete in-memory representation of a DOT graph.
//
// Strict is recorded but not enforced: multi-edges are neither rejected
// nor collapsed. Node and edge sequences keep declaration order, and edge
// endpoints may reference IDs with no explicit node entry.
type Graph struct {
	Strict   bool
	Directed bool
	ID       *GraphID // optional graph name
	Attrs    []Attr   // graph-level attributes
	Nodes    []Node
	Edges    []Edge
}

// WithStrict returns a copy of g with the strict flag set.
func (g Graph) WithStrict(strict bool) Graph {
	g.Strict = strict
	return g
}

// WithID returns a copy of g named by id.
func (g Graph) WithID(id GraphID) Graph {
	g.ID = &id
	return g
}
