package topology

import (
	"fmt"
	"sync"
)

// nodeCompartment owns a contiguous absolute index range [start, start+n).
// Relative index within the compartment is stable across RemoveNode calls;
// only the live flag changes.
type nodeCompartment struct {
	name  string
	start int
	live  []bool // len == n; live[rel] == false means tombstoned
}

func (c *nodeCompartment) n() int { return len(c.live) }

// edgeCompartment stores a directed adjacency over absolute node indices, in
// both directions for O(1) incoming/outgoing queries.
type edgeCompartment struct {
	name string
	out  map[int]map[int]struct{} // from -> set of to
	in   map[int]map[int]struct{} // to -> set of from
}

func newEdgeCompartment(name string) *edgeCompartment {
	return &edgeCompartment{name: name, out: make(map[int]map[int]struct{}), in: make(map[int]map[int]struct{})}
}

// Topology is a thread-safe multi-compartment directed multigraph.
//
// Concurrency: a single RWMutex guards the whole structure. ecodyn topologies
// are small (at most a few hundred species/nutrients) and mutated rarely
// (once at model-assembly time, then only via extinction tombstoning), so a
// single coarse lock is simpler and sufficiently fast; this mirrors the
// teacher's choice of per-concern locks only where contention was measured
// to matter.
type Topology struct {
	mu sync.RWMutex

	nodeOrder  []string
	nodes      map[string]*nodeCompartment
	totalNodes int

	edgeOrder []string
	edges     map[string]*edgeCompartment
}

// New returns an empty Topology.
func New() *Topology {
	return &Topology{
		nodes: make(map[string]*nodeCompartment),
		edges: make(map[string]*edgeCompartment),
	}
}

// AddNodeCompartment registers a new node compartment of size n, all live,
// and returns the absolute index of its first node. Compartments are
// append-only: once created, a compartment's size never shrinks (extinction
// is tombstoning, not structural removal).
func (t *Topology) AddNodeCompartment(name string, n int) (start int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.nodes[name]; exists {
		return 0, fmt.Errorf("topology: AddNodeCompartment(%q): %w", name, ErrCompartmentExists)
	}
	start = t.totalNodes
	live := make([]bool, n)
	for i := range live {
		live[i] = true
	}
	t.nodes[name] = &nodeCompartment{name: name, start: start, live: live}
	t.nodeOrder = append(t.nodeOrder, name)
	t.totalNodes += n
	return start, nil
}

// EnsureEdgeCompartment registers edge compartment name if not already
// present. Idempotent, unlike AddNodeCompartment, because multiple
// non-trophic-layer blueprints may all want to ensure "facilitation" exists
// without needing to track whether another blueprint already created it.
func (t *Topology) EnsureEdgeCompartment(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.edges[name]; !ok {
		t.edges[name] = newEdgeCompartment(name)
		t.edgeOrder = append(t.edgeOrder, name)
	}
}

// NNodes returns the size of a node compartment.
func (t *Topology) NNodes(compartment string) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.nodes[compartment]
	if !ok {
		return 0, fmt.Errorf("topology: NNodes(%q): %w", compartment, ErrUnknownCompartment)
	}
	return c.n(), nil
}

// AbsoluteIndex converts a compartment-relative index to an absolute index.
func (t *Topology) AbsoluteIndex(compartment string, rel int) (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.nodes[compartment]
	if !ok {
		return 0, fmt.Errorf("topology: AbsoluteIndex(%q): %w", compartment, ErrUnknownCompartment)
	}
	if rel < 0 || rel >= c.n() {
		return 0, fmt.Errorf("topology: AbsoluteIndex(%q,%d): %w", compartment, rel, ErrOutOfBounds)
	}
	return c.start + rel, nil
}

// IsLive reports whether the node at the given relative index within
// compartment is live (not tombstoned).
func (t *Topology) IsLive(compartment string, rel int) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.nodes[compartment]
	if !ok {
		return false, fmt.Errorf("topology: IsLive(%q): %w", compartment, ErrUnknownCompartment)
	}
	if rel < 0 || rel >= c.n() {
		return false, fmt.Errorf("topology: IsLive(%q,%d): %w", compartment, rel, ErrOutOfBounds)
	}
	return c.live[rel], nil
}

// LiveNodeIndices returns the relative indices of all live nodes in
// compartment, in ascending order.
func (t *Topology) LiveNodeIndices(compartment string) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.nodes[compartment]
	if !ok {
		return nil, fmt.Errorf("topology: LiveNodeIndices(%q): %w", compartment, ErrUnknownCompartment)
	}
	out := make([]int, 0, c.n())
	for i, live := range c.live {
		if live {
			out = append(out, i)
		}
	}
	return out, nil
}

// RemoveNode tombstones the node at the given relative index within
// compartment: it is marked dead and every incident edge (incoming or
// outgoing, across all edge compartments) is dropped. The node's relative
// index, and every other node's absolute index, remain stable; subsequent
// IsLive returns false and LiveNodeIndices skips it.
func (t *Topology) RemoveNode(compartment string, rel int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.nodes[compartment]
	if !ok {
		return fmt.Errorf("topology: RemoveNode(%q): %w", compartment, ErrUnknownCompartment)
	}
	if rel < 0 || rel >= c.n() {
		return fmt.Errorf("topology: RemoveNode(%q,%d): %w", compartment, rel, ErrOutOfBounds)
	}
	if !c.live[rel] {
		return nil // already tombstoned: idempotent
	}
	c.live[rel] = false

	abs := c.start + rel
	for _, ec := range t.edges {
		for to := range ec.out[abs] {
			delete(ec.in[to], abs)
		}
		delete(ec.out, abs)
		for from := range ec.in[abs] {
			delete(ec.out[from], abs)
		}
		delete(ec.in, abs)
	}
	return nil
}

// absLive reports whether the node at absolute index abs is currently live.
func (t *Topology) absLive(abs int) bool {
	for _, c := range t.nodes {
		if abs >= c.start && abs < c.start+c.n() {
			return c.live[abs-c.start]
		}
	}
	return false
}

// AddEdge adds a directed edge from -> to (absolute node indices) in the
// given edge compartment. The edge compartment is created on first use.
// Both endpoints must belong to a live node; AddEdge is a structural
// operation used during model assembly, before any extinction occurs.
func (t *Topology) AddEdge(edgeCompartmentName string, from, to int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ec, ok := t.edges[edgeCompartmentName]
	if !ok {
		ec = newEdgeCompartment(edgeCompartmentName)
		t.edges[edgeCompartmentName] = ec
		t.edgeOrder = append(t.edgeOrder, edgeCompartmentName)
	}
	if ec.out[from] == nil {
		ec.out[from] = make(map[int]struct{})
	}
	ec.out[from][to] = struct{}{}
	if ec.in[to] == nil {
		ec.in[to] = make(map[int]struct{})
	}
	ec.in[to][from] = struct{}{}
	return nil
}

// OutgoingIndices returns the absolute indices of nodes that nodeAbs has an
// edge to, in the given edge compartment.
func (t *Topology) OutgoingIndices(nodeAbs int, edgeCompartmentName string) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ec, ok := t.edges[edgeCompartmentName]
	if !ok {
		return nil, fmt.Errorf("topology: OutgoingIndices(%q): %w", edgeCompartmentName, ErrUnknownCompartment)
	}
	return sortedKeys(ec.out[nodeAbs]), nil
}

// IncomingIndices returns the absolute indices of nodes that have an edge to
// nodeAbs, in the given edge compartment.
func (t *Topology) IncomingIndices(nodeAbs int, edgeCompartmentName string) ([]int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ec, ok := t.edges[edgeCompartmentName]
	if !ok {
		return nil, fmt.Errorf("topology: IncomingIndices(%q): %w", edgeCompartmentName, ErrUnknownCompartment)
	}
	return sortedKeys(ec.in[nodeAbs]), nil
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Insertion sort: these sets are tiny (node degree), and avoiding an
	// import of "sort" for a handful of ints keeps this hot path trivial.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
