package dot

// NodeViolation pairs a node or cluster with an attribute whose key is
// outside that entity's permitted domain. Cluster-level violations are
// tagged against the cluster itself, not its children.
type NodeViolation struct {
	Node Node
	Attr Attr
}

// EdgeViolation pairs an edge with an attribute outside the edge domain.
type EdgeViolation struct {
	Edge Edge
	Attr Attr
}

// Violations holds every out-of-domain attribute found in a graph.
type Violations struct {
	Graph []Attr
	Nodes []NodeViolation
	Edges []EdgeViolation
}

// Empty reports whether no violations were found.
func (v Violations) Empty() bool {
	return len(v.Graph) == 0 && len(v.Nodes) == 0 && len(v.Edges) == 0
}

// Validate walks g and accumulates every attribute attached to an entity
// whose kind is outside the attribute's usage domain. The traversal is
// read-only, visits every entity including nested clusters, and never
// short-circuits: all violations are reported, not just the first.
func Validate(g Graph) Violations {
	var v Violations

	for _, a := range g.Attrs {
		if !UsedByGraphs(a) {
			v.Graph = append(v.Graph, a)
		}
	}
	for _, n := range g.Nodes {
		validateNode(n, &v)
	}
	for _, e := range g.Edges {
		for _, a := range e.Attrs {
			if !UsedByEdges(a) {
				v.Edges = append(v.Edges, EdgeViolation{Edge: e, Attr: a})
			}
		}
	}
	return v
}

func validateNode(n Node, v *Violations) {
	switch n := n.(type) {
	case *Plain:
		for _, a := range n.Attrs {
			if !UsedByNodes(a) {
				v.Nodes = append(v.Nodes, NodeViolation{Node: n, Attr: a})
			}
		}
	case *Cluster:
		for _, a := range n.Attrs {
			if !UsedByClusters(a) {
				v.Nodes = append(v.Nodes, NodeViolation{Node: n, Attr: a})
			}
		}
		for _, child := range n.Children {
			validateNode(child, v)
		}
	}
}

// IsValid reports whether every attribute in g is within its entity's
// permitted domain.
func IsValid(g Graph) bool {
	return Validate(g).Empty()
}
