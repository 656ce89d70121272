package knowledge

import "fmt"

// Graph holds the authoritative in-memory topic DAG for one class during an
// edit session. Nodes and edges keep their insertion order so snapshots and
// cycle checks are deterministic and persisted documents round-trip exactly.
//
// Graph does no structural policing on its own beyond Load; every committed
// mutation goes through a Session, which validates before touching it.
type Graph struct {
	nodes   []Node
	index   map[string]int // node id -> position in nodes
	byLabel map[string]string
	edges   []Edge
	edgeSet map[Edge]bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:   make(map[string]int),
		byLabel: make(map[string]string),
		edgeSet: make(map[Edge]bool),
	}
}

// Load replaces the graph contents with a persisted snapshot, after
// defensively re-validating it: duplicate node IDs, dangling edges and
// cycles in a previously saved snapshot are a corrupt-state signal and are
// reported, not silently accepted. On error the graph is unchanged.
func (g *Graph) Load(nodes []Node, edges []Edge) error {
	index := make(map[string]int, len(nodes))
	byLabel := make(map[string]string, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return &ErrValidation{Field: "node", Reason: "empty id"}
		}
		if _, dup := index[n.ID]; dup {
			return &ErrValidation{Field: "node", Reason: fmt.Sprintf("duplicate id %q", n.ID)}
		}
		index[n.ID] = i
		byLabel[n.Label] = n.ID
	}

	edgeSet := make(map[Edge]bool, len(edges))
	for _, e := range edges {
		if _, ok := index[e.Source]; !ok {
			return &ErrValidation{Field: "edge", Reason: fmt.Sprintf("%s references nonexistent source", e)}
		}
		if _, ok := index[e.Target]; !ok {
			return &ErrValidation{Field: "edge", Reason: fmt.Sprintf("%s references nonexistent target", e)}
		}
		if edgeSet[e] {
			return &ErrValidation{Field: "edge", Reason: fmt.Sprintf("duplicate edge %s", e)}
		}
		edgeSet[e] = true
	}

	if res := DetectCycle(edges); !res.Valid {
		return &ErrCycle{Cycle: res.Cycle}
	}

	g.nodes = append([]Node{}, nodes...)
	g.index = index
	g.byLabel = byLabel
	g.edges = append([]Edge{}, edges...)
	g.edgeSet = edgeSet
	return nil
}

// Snapshot returns copies of the current nodes and edges, in insertion
// order, for persistence or rendering. Mutating the returned slices does not
// affect the graph.
func (g *Graph) Snapshot() ([]Node, []Edge) {
	nodes := append([]Node{}, g.nodes...)
	edges := append([]Edge{}, g.edges...)
	return nodes, edges
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// NodeByLabel resolves a topic by its display label. Labels are not unique;
// when duplicates exist the most recently added or renamed node wins. This
// exists as a compatibility shim for schedule rows keyed by label text.
func (g *Graph) NodeByLabel(label string) (Node, bool) {
	id, ok := g.byLabel[label]
	if !ok {
		return Node{}, false
	}
	return g.Node(id)
}

// Labels returns all node labels in insertion order.
func (g *Graph) Labels() []string {
	labels := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		labels[i] = n.Label
	}
	return labels
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasEdge reports whether the exact ordered pair exists.
func (g *Graph) HasEdge(source, target string) bool {
	return g.edgeSet[Edge{Source: source, Target: target}]
}

func (g *Graph) addNode(n Node) {
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.byLabel[n.Label] = n.ID
}

func (g *Graph) relabelNode(id, label string) {
	i := g.index[id]
	old := g.nodes[i].Label
	g.nodes[i].Label = label
	if g.byLabel[old] == id {
		delete(g.byLabel, old)
	}
	g.byLabel[label] = id
}

// removeNode deletes a node and every edge incident to it.
func (g *Graph) removeNode(id string) {
	i := g.index[id]
	if g.byLabel[g.nodes[i].Label] == id {
		delete(g.byLabel, g.nodes[i].Label)
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	delete(g.index, id)
	for j := i; j < len(g.nodes); j++ {
		g.index[g.nodes[j].ID] = j
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Source == id || e.Target == id {
			delete(g.edgeSet, e)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
}

func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.edgeSet[e] = true
}

func (g *Graph) removeEdge(e Edge) {
	if !g.edgeSet[e] {
		return
	}
	delete(g.edgeSet, e)
	for i, cur := range g.edges {
		if cur == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}
