package dot

// domain is a bitset of entity kinds permitted to carry an attribute key.
type domain uint8

const (
	graphDomain domain = 1 << iota
	clusterDomain
	nodeDomain
	edgeDomain
)

// attrDomains is the fixed attribute vocabulary. Each row maps a key to the
// entity kinds that may legally carry it, mirroring the Graphviz attribute
// usage table. Extending the vocabulary means adding rows here only; keys
// absent from the table belong to no domain.
var attrDomains = map[string]domain{
	"URL":         graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"area":        clusterDomain | nodeDomain,
	"arrowhead":   edgeDomain,
	"arrowsize":   edgeDomain,
	"arrowtail":   edgeDomain,
	"bgcolor":     graphDomain | clusterDomain,
	"center":      graphDomain,
	"color":       clusterDomain | nodeDomain | edgeDomain,
	"colorscheme": graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"comment":     graphDomain | nodeDomain | edgeDomain,
	"concentrate": graphDomain,
	"constraint":  edgeDomain,
	"decorate":    edgeDomain,
	"dir":         edgeDomain,
	"distortion":  nodeDomain,
	"fillcolor":   clusterDomain | nodeDomain | edgeDomain,
	"fixedsize":   nodeDomain,
	"fontcolor":   graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"fontname":    graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"fontsize":    graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"group":       nodeDomain,
	"headlabel":   edgeDomain,
	"headport":    edgeDomain,
	"height":      nodeDomain,
	"label":       graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"labeljust":   graphDomain | clusterDomain,
	"labelloc":    graphDomain | clusterDomain | nodeDomain,
	"layer":       clusterDomain | nodeDomain | edgeDomain,
	"layers":      graphDomain,
	"margin":      graphDomain | clusterDomain | nodeDomain,
	"nodesep":     graphDomain,
	"ordering":    graphDomain | nodeDomain,
	"orientation": graphDomain | nodeDomain,
	"pagedir":     graphDomain,
	"pencolor":    clusterDomain,
	"penwidth":    clusterDomain | nodeDomain | edgeDomain,
	"peripheries": clusterDomain | nodeDomain,
	"rank":        clusterDomain,
	"rankdir":     graphDomain,
	"ranksep":     graphDomain,
	"ratio":       graphDomain,
	"regular":     nodeDomain,
	"rotate":      graphDomain,
	"samehead":    edgeDomain,
	"sametail":    edgeDomain,
	"shape":       nodeDomain,
	"sides":       nodeDomain,
	"size":        graphDomain,
	"skew":        nodeDomain,
	"splines":     graphDomain,
	"style":       graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"taillabel":   edgeDomain,
	"tailport":    edgeDomain,
	"tooltip":     graphDomain | clusterDomain | nodeDomain | edgeDomain,
	"weight":      edgeDomain,
	"width":       nodeDomain,
	"xlabel":      nodeDomain | edgeDomain,
}

// UsedByGraphs reports whether a's key may appear on a graph.
func UsedByGraphs(a Attr) bool { return attrDomains[a.Key]&graphDomain != 0 }

// UsedByClusters reports whether a's key may appear on a cluster.
func UsedByClusters(a Attr) bool { return attrDomains[a.Key]&clusterDomain != 0 }

// UsedByNodes reports whether a's key may appear on a node.
func UsedByNodes(a Attr) bool { return attrDomains[a.Key]&nodeDomain != 0 }

// UsedByEdges reports whether a's key may appear on an edge.
func UsedByEdges(a Attr) bool { return attrDomains[a.Key]&edgeDomain != 0 }

// KnownAttribute reports whether key is in the recognized vocabulary.
func KnownAttribute(key string) bool {
	_, ok := attrDomains[key]
	return ok
}
