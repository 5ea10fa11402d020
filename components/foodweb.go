package components

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/generator"
	"github.com/katalvlaran/ecodyn/view"
)

// FoodwebMatrix brings a Foodweb from an explicit n x n boolean adjacency:
// Adjacency[i][j] == true iff species i consumes species j.
type FoodwebMatrix struct {
	Adjacency [][]bool
}

func (b *FoodwebMatrix) Component() blueprint.Tag { return TagFoodweb }

func (b *FoodwebMatrix) EarlyCheck() error {
	n := len(b.Adjacency)
	for _, row := range b.Adjacency {
		if len(row) != n {
			return fmt.Errorf("%w: adjacency must be square", ErrDimensionMismatch)
		}
	}
	return nil
}

func (b *FoodwebMatrix) Requires() []blueprint.Tag { return []blueprint.Tag{TagSpecies} }

func (b *FoodwebMatrix) Brings() []blueprint.Brought { return nil }

func (b *FoodwebMatrix) LateCheck(m *blueprint.Model) error {
	v := From(m)
	if len(b.Adjacency) != v.NSpecies() {
		return fmt.Errorf("%w: adjacency is %dx%d, model has %d species", ErrDimensionMismatch, len(b.Adjacency), len(b.Adjacency), v.NSpecies())
	}
	return nil
}

func (b *FoodwebMatrix) Expand(m *blueprint.Model) error {
	return expandFoodweb(m, From(m), b.Adjacency)
}

// FoodwebAdjacencyList brings a Foodweb from explicit (consumer, prey) index
// pairs, for callers that already have a sparse edge list rather than a
// dense matrix.
type FoodwebAdjacencyList struct {
	Pairs [][2]int // [consumer, prey]
}

func (b *FoodwebAdjacencyList) Component() blueprint.Tag { return TagFoodweb }

func (b *FoodwebAdjacencyList) EarlyCheck() error { return nil }

func (b *FoodwebAdjacencyList) Requires() []blueprint.Tag { return []blueprint.Tag{TagSpecies} }

func (b *FoodwebAdjacencyList) Brings() []blueprint.Brought { return nil }

func (b *FoodwebAdjacencyList) LateCheck(m *blueprint.Model) error {
	n := From(m).NSpecies()
	for _, p := range b.Pairs {
		if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
			return fmt.Errorf("%w: pair %v out of range for %d species", ErrDimensionMismatch, p, n)
		}
	}
	return nil
}

func (b *FoodwebAdjacencyList) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, p := range b.Pairs {
		adj[p[0]][p[1]] = true
	}
	return expandFoodweb(m, v, adj)
}

// FoodwebStructural brings a Foodweb sampled by a random-graph model (niche
// or cascade, or any caller-supplied generator.Model), resampled under
// Target's connectance/link-count tolerance up to Target.IterMax times.
// CheckCycle/CheckDisconnected on Target reject non-conforming candidates
// outright; when both are left false the accepted candidate's cycle and
// disconnection findings are recorded in Report rather than rejected
// (spec.md's documented default).
type FoodwebStructural struct {
	Model  generator.Model
	Seed   int64
	Target generator.Target

	// Report is populated by Expand with the accepted candidate's stats, for
	// callers that want to inspect connectance/cycle/disconnection advisories
	// after the fact.
	Report generator.Report
}

func (b *FoodwebStructural) Component() blueprint.Tag { return TagFoodweb }

func (b *FoodwebStructural) EarlyCheck() error {
	if b.Model == nil {
		return fmt.Errorf("%w: FoodwebStructural requires a generator.Model", ErrInvalidRange)
	}
	return nil
}

func (b *FoodwebStructural) Requires() []blueprint.Tag { return []blueprint.Tag{TagSpecies} }

func (b *FoodwebStructural) Brings() []blueprint.Brought { return nil }

func (b *FoodwebStructural) LateCheck(m *blueprint.Model) error { return nil }

func (b *FoodwebStructural) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	rng := rand.New(rand.NewSource(b.Seed))
	adj, report, err := generator.Generate(rng, b.Model, n, b.Target)
	if err != nil {
		return err
	}
	b.Report = report
	return expandFoodweb(m, v, adj)
}

// expandFoodweb registers the trophic edge compartment, builds the species x
// species Foodweb template every interaction-rate matrix is later sized
// against, and writes producer-vs-consumer MetabolicClass defaults (later
// blueprints may still refine class further, e.g. invertebrate vs
// ectotherm-vertebrate within consumers).
func expandFoodweb(m *blueprint.Model, v *Value, adj [][]bool) error {
	n := v.NSpecies()
	v.Topo.EnsureEdgeCompartment("trophic")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] {
				if err := v.Topo.AddEdge("trophic", i, j); err != nil {
					return err
				}
			}
		}
	}
	v.Foodweb = view.NewTemplateFrom(n, n, func(i, j int) bool { return adj[i][j] })
	for i := 0; i < n; i++ {
		isProducer := true
		for j := 0; j < n; j++ {
			if adj[i][j] {
				isProducer = false
				break
			}
		}
		if isProducer {
			v.Class[i] = ClassProducer
		} else {
			v.Class[i] = ClassInvertebrate
		}
	}

	m.RegisterProperty("foodweb.adjacency", blueprint.Property{
		Component: TagFoodweb,
		Read: func(m *blueprint.Model) (any, error) {
			v := From(m)
			n := v.NSpecies()
			out := make([][]bool, n)
			for i := range out {
				out[i] = make([]bool, n)
				for j := 0; j < n; j++ {
					out[i][j] = v.Foodweb.Allows(i, j)
				}
			}
			return out, nil
		},
	})
	return nil
}

// Producers returns the indices of species with no prey in the foodweb.
func Producers(v *Value) []int {
	n := v.NSpecies()
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		isProducer := true
		for j := 0; j < n; j++ {
			if v.Foodweb != nil && v.Foodweb.Allows(i, j) {
				isProducer = false
				break
			}
		}
		if isProducer {
			out = append(out, i)
		}
	}
	return out
}

// TrophicLevel computes t_i = 1 + mean(t_j over prey j), per species, via
// fixpoint iteration capped at 200 rounds. On a cyclic foodweb it still
// returns finite values (the fixpoint where one exists, otherwise the last
// iterate); the cycle is not flagged here.
func TrophicLevel(v *Value) []float64 {
	n := v.NSpecies()
	t := make([]float64, n)
	for i := range t {
		t[i] = 1
	}
	const maxIter = 200
	for iter := 0; iter < maxIter; iter++ {
		next := make([]float64, n)
		maxDelta := 0.0
		for i := 0; i < n; i++ {
			sum, count := 0.0, 0
			for j := 0; j < n; j++ {
				if v.Foodweb != nil && v.Foodweb.Allows(i, j) {
					sum += t[j]
					count++
				}
			}
			if count == 0 {
				next[i] = 1
			} else {
				next[i] = 1 + sum/float64(count)
			}
			if d := next[i] - t[i]; d > maxDelta || -d > maxDelta {
				if d < 0 {
					d = -d
				}
				maxDelta = d
			}
		}
		t = next
		if maxDelta < 1e-9 {
			break
		}
	}
	return t
}
