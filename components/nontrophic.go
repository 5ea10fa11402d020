package components

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/view"
)

// LayerTopology describes how a NonTrophicLayer's adjacency is built: from
// an explicit matrix, from a target connectance, or from a target link
// count — exactly one of these three must be set.
type LayerTopology struct {
	Matrix      [][]bool
	Connectance float64
	LinkCount   int
	Symmetric   bool
	Seed        int64
}

func (t LayerTopology) sourceCount() int {
	n := 0
	if t.Matrix != nil {
		n++
	}
	if t.Connectance > 0 {
		n++
	}
	if t.LinkCount > 0 {
		n++
	}
	return n
}

// domain reports which (i, j) pairs a non-trophic layer may legally connect
// — its "potential links" template (spec.md §4.5/§3). The four layers each
// restrict to a different role-based subset of species x species rather
// than the unrestricted n x n space every other LayerTopology consumer
// assumes.
type domain func(v *Value, i, j int) bool

func competitionDomain(v *Value, i, j int) bool {
	return i != j && isProducer(v, i) && isProducer(v, j)
}

func facilitationDomain(v *Value, i, j int) bool {
	return i != j && isProducer(v, j)
}

func refugeDomain(v *Value, i, j int) bool {
	return i != j && isProducer(v, i) && isPrey(v, j)
}

func interferenceDomain(v *Value, i, j int) bool {
	return i != j && hasPrey(v, i) && hasPrey(v, j) && sharesPrey(v, i, j)
}

func isProducer(v *Value, i int) bool {
	return v.Foodweb == nil || !hasPrey(v, i)
}

func hasPrey(v *Value, i int) bool {
	if v.Foodweb == nil {
		return false
	}
	n := v.NSpecies()
	for j := 0; j < n; j++ {
		if v.Foodweb.Allows(i, j) {
			return true
		}
	}
	return false
}

// isPrey reports whether j is consumed by at least one species — spec.md's
// "prey" side of the refuge layer's producer->prey template.
func isPrey(v *Value, j int) bool {
	if v.Foodweb == nil {
		return false
	}
	n := v.NSpecies()
	for k := 0; k < n; k++ {
		if v.Foodweb.Allows(k, j) {
			return true
		}
	}
	return false
}

func sharesPrey(v *Value, i, j int) bool {
	n := v.NSpecies()
	for k := 0; k < n; k++ {
		if v.Foodweb.Allows(i, k) && v.Foodweb.Allows(j, k) {
			return true
		}
	}
	return false
}

func (t LayerTopology) build(v *Value, allowed domain) ([][]bool, error) {
	n := v.NSpecies()
	switch {
	case t.Matrix != nil:
		if err := checkBoolMatrix(t.Matrix, n); err != nil {
			return nil, err
		}
		if err := checkDomainMatrix(v, t.Matrix, allowed); err != nil {
			return nil, err
		}
		return t.Matrix, nil
	case t.Connectance > 0:
		return sampleByConnectance(v, allowed, t.Connectance, t.Symmetric, t.Seed), nil
	case t.LinkCount > 0:
		return sampleByLinkCount(v, allowed, t.LinkCount, t.Symmetric, t.Seed), nil
	default:
		return nil, fmt.Errorf("%w: LayerTopology requires exactly one of Matrix/Connectance/LinkCount", ErrInvalidRange)
	}
}

func checkBoolMatrix(adj [][]bool, n int) error {
	if len(adj) != n {
		return fmt.Errorf("%w: adjacency has %d rows, want %d", ErrDimensionMismatch, len(adj), n)
	}
	for _, row := range adj {
		if len(row) != n {
			return fmt.Errorf("%w: adjacency row has %d entries, want %d", ErrDimensionMismatch, len(row), n)
		}
	}
	return nil
}

func checkDomainMatrix(v *Value, adj [][]bool, allowed domain) error {
	n := len(adj)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] && !allowed(v, i, j) {
				return fmt.Errorf("%w: edge %d->%d", ErrLayerDomainViolation, i, j)
			}
		}
	}
	return nil
}

func domainPairs(v *Value, allowed domain, symmetric bool) [][2]int {
	n := v.NSpecies()
	pairs := make([][2]int, 0, n*n)
	for i := 0; i < n; i++ {
		jStart := 0
		if symmetric {
			jStart = i + 1
		}
		for j := jStart; j < n; j++ {
			if i == j {
				continue
			}
			if allowed(v, i, j) && (!symmetric || allowed(v, j, i)) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

func sampleByConnectance(v *Value, allowed domain, c float64, symmetric bool, seed int64) [][]bool {
	n := v.NSpecies()
	rng := rand.New(rand.NewSource(seed))
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, p := range domainPairs(v, allowed, symmetric) {
		if rng.Float64() < c {
			adj[p[0]][p[1]] = true
			if symmetric {
				adj[p[1]][p[0]] = true
			}
		}
	}
	return adj
}

func sampleByLinkCount(v *Value, allowed domain, links int, symmetric bool, seed int64) [][]bool {
	n := v.NSpecies()
	rng := rand.New(rand.NewSource(seed))
	pairs := domainPairs(v, allowed, symmetric)
	rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })
	if links > len(pairs) {
		links = len(pairs)
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, p := range pairs[:links] {
		adj[p[0]][p[1]] = true
		if symmetric {
			adj[p[1]][p[0]] = true
		}
	}
	return adj
}

// nonTrophicLayer is the shared implementation behind the four
// NonTrophicLayer blueprints (Competition, Facilitation, Interference,
// Refuge); only the tag, the aliased edge-compartment name, the default
// functional form, and the potential-links domain differ between them.
type nonTrophicLayer struct {
	tag         blueprint.Tag
	edgeName    string
	defaultForm FunctionalForm // nil for interference
	domain      domain
	topology    LayerTopology
	intensity   float64
	form        FunctionalForm
}

func (b *nonTrophicLayer) Component() blueprint.Tag { return b.tag }

func (b *nonTrophicLayer) EarlyCheck() error {
	if b.topology.sourceCount() != 1 {
		return fmt.Errorf("%w: exactly one of Matrix/Connectance/LinkCount required", ErrInvalidRange)
	}
	return nil
}

func (b *nonTrophicLayer) Requires() []blueprint.Tag   { return []blueprint.Tag{TagSpecies, TagFoodweb} }
func (b *nonTrophicLayer) Brings() []blueprint.Brought { return nil }

func (b *nonTrophicLayer) LateCheck(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	if b.topology.Matrix != nil {
		if err := checkBoolMatrix(b.topology.Matrix, n); err != nil {
			return err
		}
		return checkDomainMatrix(v, b.topology.Matrix, b.domain)
	}
	return nil
}

func (b *nonTrophicLayer) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	adj, err := b.topology.build(v, b.domain)
	if err != nil {
		return err
	}

	v.Topo.EnsureEdgeCompartment(b.edgeName)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if adj[i][j] {
				if err := v.Topo.AddEdge(b.edgeName, i, j); err != nil {
					return err
				}
			}
		}
	}

	form := b.form
	if form == nil {
		form = b.defaultForm
	}
	v.NonTrophic[b.tag] = &NonTrophicLayer{
		Adjacency: view.NewTemplateFrom(n, n, func(i, j int) bool { return adj[i][j] }),
		Intensity: b.intensity,
		Form:      form,
		Symmetric: b.topology.Symmetric,
	}
	return nil
}

// NonTrophicCompetitionLayer brings a competition-for-space layer, restricted
// to producer x producer and symmetric by convention; Form defaults to
// CompetitionForm.
func NonTrophicCompetitionLayer(topology LayerTopology, intensity float64, form FunctionalForm) blueprint.Blueprint {
	topology.Symmetric = true
	return &nonTrophicLayer{tag: TagNonTrophicCompetition, edgeName: "competition", defaultForm: CompetitionForm, domain: competitionDomain, topology: topology, intensity: intensity, form: form}
}

// NonTrophicFacilitationLayer brings a facilitation layer, restricted to
// any->producer; Form defaults to FacilitationForm.
func NonTrophicFacilitationLayer(topology LayerTopology, intensity float64, form FunctionalForm) blueprint.Blueprint {
	return &nonTrophicLayer{tag: TagNonTrophicFacilitation, edgeName: "facilitation", defaultForm: FacilitationForm, domain: facilitationDomain, topology: topology, intensity: intensity, form: form}
}

// NonTrophicInterferenceLayer brings a predator-interference layer,
// restricted to pairs of predators that share at least one prey species; it
// has no functional form, contributing an additive term in the functional-
// response denominator instead (dynamics package).
func NonTrophicInterferenceLayer(topology LayerTopology, intensity float64) blueprint.Blueprint {
	return &nonTrophicLayer{tag: TagNonTrophicInterference, edgeName: "interference", defaultForm: nil, domain: interferenceDomain, topology: topology, intensity: intensity}
}

// NonTrophicRefugeLayer brings a prey-refuge layer, restricted to
// producer->prey; Form defaults to RefugeForm.
func NonTrophicRefugeLayer(topology LayerTopology, intensity float64, form FunctionalForm) blueprint.Blueprint {
	return &nonTrophicLayer{tag: TagNonTrophicRefuge, edgeName: "refuge", defaultForm: RefugeForm, domain: refugeDomain, topology: topology, intensity: intensity, form: form}
}
