package view

import "fmt"

// Labels maps symbolic names to stable indices in [0, n). It backs labelled
// access on Vec/Mat facades (e.g. model.foodweb.matrix["wolf", "rabbit"]).
type Labels struct {
	toIndex map[string]int
	names   []string
}

// NewLabels builds a Labels table from an ordered slice of names; names[i]
// maps to index i. Duplicate names are rejected by panicking at construction
// time (labels are assembled once, internally, from species/nutrient
// compartments whose uniqueness is already enforced upstream).
func NewLabels(names []string) *Labels {
	l := &Labels{
		toIndex: make(map[string]int, len(names)),
		names:   append([]string(nil), names...),
	}
	for i, n := range names {
		if _, dup := l.toIndex[n]; dup {
			panic(fmt.Sprintf("view: duplicate label %q", n))
		}
		l.toIndex[n] = i
	}
	return l
}

// Index resolves a label to its index.
func (l *Labels) Index(label string) (int, error) {
	i, ok := l.toIndex[label]
	if !ok {
		return 0, fmt.Errorf("view: label %q: %w", label, ErrUnknownLabel)
	}
	return i, nil
}

// Name returns the label registered for index i, or "" if out of range.
func (l *Labels) Name(i int) string {
	if i < 0 || i >= len(l.names) {
		return ""
	}
	return l.names[i]
}

// Len returns the number of registered labels.
func (l *Labels) Len() int { return len(l.names) }

// Names returns a copy of the registered names in index order.
func (l *Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}
