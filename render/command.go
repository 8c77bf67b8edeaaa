// Package render invokes an external Graphviz layout engine on a printed
// graph. The dot package never calls into this package; render consumes
// its Print output and pipes it to a subprocess.
package render

import (
	"fmt"

	"github.com/mullikine/graphviz/dot"
)

// Engine names an external layout engine binary.
type Engine int

const (
	EngineDot   Engine = iota // hierarchical layout
	EngineNeato               // symmetric/undirected layout
	EngineTwopi               // radial layout
	EngineCirco               // circular layout
	EngineFdp                 // spring-model layout
)

var engineNames = [...]string{"dot", "neato", "twopi", "circo", "fdp"}

// String returns the engine's binary name.
func (e Engine) String() string {
	if int(e) < 0 || int(e) >= len(engineNames) {
		return "unknown"
	}
	return engineNames[e]
}

// ParseEngine resolves a binary name to an Engine.
func ParseEngine(name string) (Engine, error) {
	for i, n := range engineNames {
		if n == name {
			return Engine(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layout engine %q", name)
}

// CommandFor selects the default layout engine for a graph: the
// hierarchical engine for directed graphs, the symmetric engine otherwise.
// Pure; it does not invoke anything.
func CommandFor(g dot.Graph) Engine {
	if g.Directed {
		return EngineDot
	}
	return EngineNeato
}
