package view

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// VecWriteHook runs before a MutVec commits a new value at index i. It may
// update model-owned derived caches; returning an error aborts the write and
// leaves the vector unmodified.
type VecWriteHook func(i int, newValue float64) error

// Vec is a read-only, bounds-checked facade over a dense vector of float64.
type Vec struct {
	data   *mat.VecDense
	labels *Labels
}

// NewVec wraps data as a read-only Vec. labels may be nil if labelled access
// is not needed.
func NewVec(data *mat.VecDense, labels *Labels) *Vec {
	return &Vec{data: data, labels: labels}
}

// Size returns the vector's length.
func (v *Vec) Size() int { return v.data.Len() }

// Get returns the value at index i.
func (v *Vec) Get(i int) (float64, error) {
	if i < 0 || i >= v.data.Len() {
		return 0, fmt.Errorf("view: Vec.Get(%d): %w", i, ErrOutOfBounds)
	}
	return v.data.AtVec(i), nil
}

// GetLabel returns the value at the index registered for label.
func (v *Vec) GetLabel(label string) (float64, error) {
	if v.labels == nil {
		return 0, fmt.Errorf("view: Vec.GetLabel(%q): %w", label, ErrUnknownLabel)
	}
	i, err := v.labels.Index(label)
	if err != nil {
		return 0, err
	}
	return v.Get(i)
}

// Raw exposes the underlying gonum vector for callers that need it for bulk
// numeric operations. The returned vector must not be mutated; use MutVec
// for writes.
func (v *Vec) Raw() *mat.VecDense { return v.data }

// Labels returns the label table backing this vector, or nil.
func (v *Vec) Labels() *Labels { return v.labels }

// MutVec is a writable Vec. Set runs the optional write hook before
// committing, as required by spec.md §4.2.
type MutVec struct {
	Vec
	hook VecWriteHook
}

// NewMutVec wraps data as a writable vector, with an optional write hook.
func NewMutVec(data *mat.VecDense, labels *Labels, hook VecWriteHook) *MutVec {
	return &MutVec{Vec: Vec{data: data, labels: labels}, hook: hook}
}

// Set writes v at index i, bounds-checked, after running the write hook.
func (m *MutVec) Set(i int, v float64) error {
	if i < 0 || i >= m.data.Len() {
		return fmt.Errorf("view: MutVec.Set(%d): %w", i, ErrOutOfBounds)
	}
	if m.hook != nil {
		if err := m.hook(i, v); err != nil {
			return err
		}
	}
	m.data.SetVec(i, v)
	return nil
}

// SetLabel writes v at the index registered for label.
func (m *MutVec) SetLabel(label string, v float64) error {
	if m.labels == nil {
		return fmt.Errorf("view: MutVec.SetLabel(%q): %w", label, ErrUnknownLabel)
	}
	i, err := m.labels.Index(label)
	if err != nil {
		return err
	}
	return m.Set(i, v)
}

// ReadOnly returns a non-writable Vec over the same backing storage.
func (m *MutVec) ReadOnly() *Vec { return &m.Vec }
