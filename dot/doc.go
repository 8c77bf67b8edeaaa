// Package dot models, parses, validates, and prints graphs expressed in a
// restricted subset of the Graphviz DOT language.
//
// The subset covers a header declaring strictness, directedness and an
// optional graph identifier, followed by attribute statements, integer-ID
// node statements, and edge statements inside braces. Clusters (nested
// subgraph blocks) exist in the data model and are printed, but are not
// recognized by the parser; see the package-level asymmetry notes on Parse
// and Print.
//
// The package has three tightly coupled operations over one data model:
//
//   - Parse: recursive-descent parsing of DOT source into a Graph, built
//     from small backtracking primitives over a position-tracked cursor.
//   - Print: deterministic rendering of a Graph back to DOT text that the
//     same parser accepts (modulo clusters).
//   - Validate: per-entity checking of attached attributes against each
//     attribute key's permitted usage domain.
//
// Usage:
//
//	g, err := dot.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(dot.Print(g))
package dot
