package topology

// DisconnectedComponents partitions the live nodes of t into weakly
// connected components (an edge of any kind, in either direction, connects
// two nodes) and returns one Topology per component. Every returned
// Topology shares the same compartment layout and absolute index space as
// t; nodes outside a given component are tombstoned in that component's
// copy. A live node with no incident edges forms its own singleton
// component.
func (t *Topology) DisconnectedComponents() []*Topology {
	t.mu.RLock()

	neighbors := make(map[int]map[int]struct{})
	liveSet := make(map[int]struct{})
	for _, c := range t.nodes {
		for rel, live := range c.live {
			if live {
				liveSet[c.start+rel] = struct{}{}
				neighbors[c.start+rel] = make(map[int]struct{})
			}
		}
	}
	for _, ec := range t.edges {
		for from, tos := range ec.out {
			if _, ok := liveSet[from]; !ok {
				continue
			}
			for to := range tos {
				if _, ok := liveSet[to]; !ok {
					continue
				}
				neighbors[from][to] = struct{}{}
				neighbors[to][from] = struct{}{}
			}
		}
	}

	// Deterministic visitation order: ascending absolute index.
	ordered := make([]int, 0, len(liveSet))
	for abs := range liveSet {
		ordered = append(ordered, abs)
	}
	insertionSortInts(ordered)

	visited := make(map[int]bool, len(ordered))
	var groups [][]int
	for _, start := range ordered {
		if visited[start] {
			continue
		}
		queue := []int{start}
		visited[start] = true
		var group []int
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			group = append(group, cur)
			nbrs := sortedKeys(neighbors[cur])
			for _, n := range nbrs {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		insertionSortInts(group)
		groups = append(groups, group)
	}

	nodeOrder := append([]string(nil), t.nodeOrder...)
	nodeSizes := make(map[string]int, len(t.nodes))
	nodeStarts := make(map[string]int, len(t.nodes))
	for name, c := range t.nodes {
		nodeSizes[name] = c.n()
		nodeStarts[name] = c.start
	}
	edgeOrder := append([]string(nil), t.edgeOrder...)
	edgeSnapshot := make(map[string]*edgeCompartment, len(t.edges))
	for name, ec := range t.edges {
		edgeSnapshot[name] = ec
	}
	t.mu.RUnlock()

	out := make([]*Topology, 0, len(groups))
	for _, group := range groups {
		member := make(map[int]struct{}, len(group))
		for _, abs := range group {
			member[abs] = struct{}{}
		}

		sub := New()
		for _, name := range nodeOrder {
			sub.nodes[name] = &nodeCompartment{name: name, start: nodeStarts[name], live: make([]bool, nodeSizes[name])}
			sub.nodeOrder = append(sub.nodeOrder, name)
		}
		sub.totalNodes = t.totalNodes
		for _, abs := range group {
			for _, name := range nodeOrder {
				c := sub.nodes[name]
				if abs >= c.start && abs < c.start+len(c.live) {
					c.live[abs-c.start] = true
					break
				}
			}
		}
		for _, name := range edgeOrder {
			orig := edgeSnapshot[name]
			ec := newEdgeCompartment(name)
			for from, tos := range orig.out {
				if _, ok := member[from]; !ok {
					continue
				}
				for to := range tos {
					if _, ok := member[to]; !ok {
						continue
					}
					if ec.out[from] == nil {
						ec.out[from] = make(map[int]struct{})
					}
					ec.out[from][to] = struct{}{}
					if ec.in[to] == nil {
						ec.in[to] = make(map[int]struct{})
					}
					ec.in[to][from] = struct{}{}
				}
			}
			sub.edges[name] = ec
			sub.edgeOrder = append(sub.edgeOrder, name)
		}
		out = append(out, sub)
	}
	return out
}

func insertionSortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
