package view

// Template is a boolean matrix (or, for vectors, a boolean vector reduced to
// a single row) that restricts which indices of a templated quantity may be
// written. It is the sparse structural mask referenced throughout spec.md
// §4 (e.g. the trophic adjacency template for interaction-rate matrices, or
// the potential-links template for a non-trophic layer).
type Template struct {
	rows, cols int
	allowed    []bool // row-major, len == rows*cols
}

// NewTemplate builds an all-false rows x cols template.
func NewTemplate(rows, cols int) *Template {
	return &Template{rows: rows, cols: cols, allowed: make([]bool, rows*cols)}
}

// NewTemplateFrom builds a template from an existing boolean adjacency,
// addressed fn(i,j) -> bool.
func NewTemplateFrom(rows, cols int, fn func(i, j int) bool) *Template {
	t := NewTemplate(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			t.allowed[i*cols+j] = fn(i, j)
		}
	}
	return t
}

// Allow marks (i,j) as structurally present.
func (t *Template) Allow(i, j int) {
	t.allowed[i*t.cols+j] = true
}

// Allows reports whether (i,j) is structurally present. Out-of-range
// indices are never allowed.
func (t *Template) Allows(i, j int) bool {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		return false
	}
	return t.allowed[i*t.cols+j]
}

// Dims returns the template's shape.
func (t *Template) Dims() (rows, cols int) { return t.rows, t.cols }

// NonzeroPairs returns every (i,j) this template allows, in row-major order
// (spec.md §4.7's "nonzero_links"). The derivative kernel does not call it;
// it builds its own index from Allows.
func (t *Template) NonzeroPairs() [][2]int {
	pairs := make([][2]int, 0)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if t.allowed[i*t.cols+j] {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
