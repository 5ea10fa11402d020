package simulate

import (
	"fmt"

	"github.com/katalvlaran/ecodyn/components"
)

// advisories flags structural oddities a caller should look at before
// trusting the trajectory: producers whose every predator has gone extinct,
// consumers whose entire diet has gone extinct, and a food web that has
// split into more than one disconnected piece.
//
// The predator/prey sets are read from v.Foodweb, the original trophic
// adjacency fixed at assembly time, rather than from v.Topo's "trophic" edge
// compartment: Simulate tombstones extinct species via Topo.RemoveNode,
// which drops every edge incident to the tombstoned node, so by the time
// this runs a post-tombstone edge lookup on a surviving species already
// excludes its extinct neighbors and can never observe the case it's meant
// to flag. v.Foodweb is untouched by tombstoning and still holds the full
// original neighbor set.
func advisories(v *components.Value) []string {
	var out []string

	live, err := v.Topo.LiveNodeIndices("species")
	if err != nil {
		return out
	}
	liveSet := make(map[int]bool, len(live))
	for _, i := range live {
		liveSet[i] = true
	}
	n := v.NSpecies()

	for _, i := range live {
		if v.Class[i] != components.ClassProducer {
			continue
		}
		hadPredator, survivingPredator := false, false
		for p := 0; p < n; p++ {
			if !v.Foodweb.Allows(p, i) {
				continue
			}
			hadPredator = true
			if liveSet[p] {
				survivingPredator = true
				break
			}
		}
		if hadPredator && !survivingPredator {
			out = append(out, fmt.Sprintf("producer %q has no surviving predator left in its former food web", v.SpeciesLabels[i]))
		}
	}

	for _, i := range live {
		if v.Class[i] == components.ClassProducer {
			continue
		}
		hadPrey, survivingPrey := false, false
		for j := 0; j < n; j++ {
			if !v.Foodweb.Allows(i, j) {
				continue
			}
			hadPrey = true
			if liveSet[j] {
				survivingPrey = true
				break
			}
		}
		if hadPrey && !survivingPrey {
			out = append(out, fmt.Sprintf("consumer %q has no surviving prey", v.SpeciesLabels[i]))
		}
	}

	pieces := v.Topo.DisconnectedComponents()
	if len(pieces) > 1 {
		out = append(out, fmt.Sprintf("surviving food web has split into %d disconnected components", len(pieces)))
	}

	return out
}
