package topology

// Clone returns a deep copy of t: independent node/edge compartments so
// mutating the clone (e.g. further RemoveNode calls during a simulation)
// never affects t. Used by components.Value.Clone to back
// blueprint.Model's stage-then-commit Add, and by simulate.Simulate to
// freeze a model's topology into its Solution.
func (t *Topology) Clone() *Topology {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := New()
	for _, name := range t.nodeOrder {
		c := t.nodes[name]
		live := make([]bool, len(c.live))
		copy(live, c.live)
		out.nodes[name] = &nodeCompartment{name: name, start: c.start, live: live}
		out.nodeOrder = append(out.nodeOrder, name)
	}
	out.totalNodes = t.totalNodes

	for _, name := range t.edgeOrder {
		ec := t.edges[name]
		clone := newEdgeCompartment(name)
		for from, tos := range ec.out {
			cp := make(map[int]struct{}, len(tos))
			for to := range tos {
				cp[to] = struct{}{}
			}
			clone.out[from] = cp
		}
		for to, froms := range ec.in {
			cp := make(map[int]struct{}, len(froms))
			for from := range froms {
				cp[from] = struct{}{}
			}
			clone.in[to] = cp
		}
		out.edges[name] = clone
		out.edgeOrder = append(out.edgeOrder, name)
	}
	return out
}
