package view

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatWriteHook runs before a MutMat commits a new value at (i,j). See
// VecWriteHook for semantics.
type MatWriteHook func(i, j int, newValue float64) error

// Mat is a read-only, bounds-checked facade over a dense matrix of float64,
// optionally restricted to a Template (sparse structural mask).
type Mat struct {
	data     *mat.Dense
	template *Template // nil => fully dense, every (i,j) addressable
	rowLbl   *Labels
	colLbl   *Labels
}

// NewMat wraps data as a read-only Mat. template, rowLbl, colLbl may be nil.
func NewMat(data *mat.Dense, template *Template, rowLbl, colLbl *Labels) *Mat {
	return &Mat{data: data, template: template, rowLbl: rowLbl, colLbl: colLbl}
}

// Dims returns the matrix's shape.
func (m *Mat) Dims() (rows, cols int) { return m.data.Dims() }

// Template returns the structural mask restricting writes, or nil if the
// matrix is fully dense.
func (m *Mat) Template() *Template { return m.template }

// Get returns the value at (i,j), bounds-checked against the matrix shape
// (not the template — reads of a templated-absent cell simply return the
// stored value, normally its zero default).
func (m *Mat) Get(i, j int) (float64, error) {
	rows, cols := m.data.Dims()
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return 0, fmt.Errorf("view: Mat.Get(%d,%d): %w", i, j, ErrOutOfBounds)
	}
	return m.data.At(i, j), nil
}

// GetLabel returns the value at the row/col indices registered for the given
// labels.
func (m *Mat) GetLabel(rowLabel, colLabel string) (float64, error) {
	if m.rowLbl == nil || m.colLbl == nil {
		return 0, fmt.Errorf("view: Mat.GetLabel(%q,%q): %w", rowLabel, colLabel, ErrUnknownLabel)
	}
	i, err := m.rowLbl.Index(rowLabel)
	if err != nil {
		return 0, err
	}
	j, err := m.colLbl.Index(colLabel)
	if err != nil {
		return 0, err
	}
	return m.Get(i, j)
}

// Raw exposes the underlying gonum matrix for bulk numeric operations. The
// returned matrix must not be mutated directly; use MutMat for writes.
func (m *Mat) Raw() *mat.Dense { return m.data }

// RowLabels and ColLabels return the label tables backing this matrix, or nil.
func (m *Mat) RowLabels() *Labels { return m.rowLbl }
func (m *Mat) ColLabels() *Labels { return m.colLbl }

// MutMat is a writable Mat. Set checks bounds, then the template (if any),
// then runs the write hook, then assigns — the exact order spec.md §4.2
// requires.
type MutMat struct {
	Mat
	hook MatWriteHook
}

// NewMutMat wraps data as a writable matrix.
func NewMutMat(data *mat.Dense, template *Template, rowLbl, colLbl *Labels, hook MatWriteHook) *MutMat {
	return &MutMat{Mat: Mat{data: data, template: template, rowLbl: rowLbl, colLbl: colLbl}, hook: hook}
}

// Set writes v at (i,j).
func (m *MutMat) Set(i, j int, v float64) error {
	rows, cols := m.data.Dims()
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return fmt.Errorf("view: MutMat.Set(%d,%d): %w", i, j, ErrOutOfBounds)
	}
	if m.template != nil && !m.template.Allows(i, j) {
		return fmt.Errorf("view: MutMat.Set(%d,%d): %w", i, j, ErrTemplateViolation)
	}
	if m.hook != nil {
		if err := m.hook(i, j, v); err != nil {
			return err
		}
	}
	m.data.Set(i, j, v)
	return nil
}

// SetLabel writes v at the row/col indices registered for the given labels.
func (m *MutMat) SetLabel(rowLabel, colLabel string, v float64) error {
	if m.rowLbl == nil || m.colLbl == nil {
		return fmt.Errorf("view: MutMat.SetLabel(%q,%q): %w", rowLabel, colLabel, ErrUnknownLabel)
	}
	i, err := m.rowLbl.Index(rowLabel)
	if err != nil {
		return err
	}
	j, err := m.colLbl.Index(colLabel)
	if err != nil {
		return err
	}
	return m.Set(i, j, v)
}

// ReadOnly returns a non-writable Mat over the same backing storage.
func (m *MutMat) ReadOnly() *Mat { return &m.Mat }
