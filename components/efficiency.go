package components

import (
	"fmt"

	"github.com/katalvlaran/ecodyn/blueprint"
	"github.com/katalvlaran/ecodyn/view"
	"gonum.org/v1/gonum/mat"
)

// EfficiencyScalar brings a single assimilation efficiency e applied
// uniformly to every trophic edge.
type EfficiencyScalar struct {
	E float64
}

func (b *EfficiencyScalar) Component() blueprint.Tag { return TagEfficiency }
func (b *EfficiencyScalar) EarlyCheck() error {
	if b.E <= 0 || b.E > 1 {
		return fmt.Errorf("%w: efficiency must be in (0,1]", ErrInvalidRange)
	}
	return nil
}
func (b *EfficiencyScalar) Requires() []blueprint.Tag   { return []blueprint.Tag{TagSpecies, TagFoodweb} }
func (b *EfficiencyScalar) Brings() []blueprint.Brought { return nil }
func (b *EfficiencyScalar) LateCheck(m *blueprint.Model) error { return nil }

func (b *EfficiencyScalar) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v.Foodweb.Allows(i, j) {
				raw.Set(i, j, b.E)
			}
		}
	}
	v.Efficiency = view.NewMutMat(raw, v.Foodweb, nil, nil, nil)
	return nil
}

// EfficiencyMatrix brings an explicit e_ij assimilation efficiency matrix.
type EfficiencyMatrix struct {
	E [][]float64
}

func (b *EfficiencyMatrix) Component() blueprint.Tag { return TagEfficiency }
func (b *EfficiencyMatrix) EarlyCheck() error         { return nil }
func (b *EfficiencyMatrix) Requires() []blueprint.Tag {
	return []blueprint.Tag{TagSpecies, TagFoodweb}
}
func (b *EfficiencyMatrix) Brings() []blueprint.Brought { return nil }

func (b *EfficiencyMatrix) LateCheck(m *blueprint.Model) error {
	return checkOptionalMatrix(b.E, From(m).NSpecies())
}

func (b *EfficiencyMatrix) Expand(m *blueprint.Model) error {
	v := From(m)
	n := v.NSpecies()
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v.Foodweb.Allows(i, j) {
				raw.Set(i, j, b.E[i][j])
			}
		}
	}
	v.Efficiency = view.NewMutMat(raw, v.Foodweb, nil, nil, nil)
	return nil
}
