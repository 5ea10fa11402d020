package blueprint

import (
	"sort"
	"sync"

	"github.com/katalvlaran/ecodyn/internal/xlog"
)

// Cloneable is implemented by a Model's internal value type so Add can stage
// an assembly attempt against a private copy and only commit it to the
// Model on full success — the mechanism behind spec.md §4.4's guarantee
// that "a failed add! leaves the model state untouched".
type Cloneable interface {
	Clone() Cloneable
}

// Model wraps an internal value plus the set of active Component tags and a
// property index. The internal value is opaque to this package: package
// components supplies one (its *components.Value) that knows how to expand
// each ecological blueprint into itself.
type Model struct {
	mu sync.RWMutex

	registry *Registry
	value    Cloneable
	active   map[Tag]bool
	props    map[string]Property

	cache map[string]any // specialization cache, keyed by property path
}

// NewModel returns an empty Model backed by value, validated against
// registry.
func NewModel(registry *Registry, value Cloneable) *Model {
	return &Model{
		registry: registry,
		value:    value,
		active:   make(map[Tag]bool),
		props:    make(map[string]Property),
		cache:    make(map[string]any),
	}
}

// Value returns the model's internal value. Package components type-asserts
// this back to *components.Value.
func (m *Model) Value() Cloneable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value
}

// Registry returns the component registry this model validates against.
func (m *Model) Registry() *Registry { return m.registry }

// IsActive reports whether tag is currently active on the model.
func (m *Model) IsActive(tag Tag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active[tag]
}

// ActiveComponents returns every active component tag, sorted.
func (m *Model) ActiveComponents() []Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Tag, 0, len(m.active))
	for t := range m.active {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// clone produces a private working copy sharing the registry but owning its
// own value/active/props/cache, for Add's stage-then-commit lifecycle.
func (m *Model) clone() *Model {
	active := make(map[Tag]bool, len(m.active))
	for k, v := range m.active {
		active[k] = v
	}
	props := make(map[string]Property, len(m.props))
	for k, v := range m.props {
		props[k] = v
	}
	return &Model{
		registry: m.registry,
		value:    m.value.Clone(),
		active:   active,
		props:    props,
		cache:    make(map[string]any),
	}
}

// Add expands each blueprint, in order, into the model: early check,
// conflict check, requirements check, recursive brought-blueprint
// expansion, late check, then Expand. Blueprints are processed against a
// private clone of the model; only if every blueprint (and everything it
// recursively brings) succeeds is the clone committed back onto m.
//
// Within one Add call, a blueprint's Requires() are checked against
// whatever is already active by the time that blueprint is reached —
// callers should list blueprints in dependency order (or rely on Brings()
// for anything a blueprint cannot assume the caller already added).
func (m *Model) Add(bps ...Blueprint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	working := m.clone()
	for _, bp := range bps {
		if err := addOne(working, bp); err != nil {
			xlog.Logger.Debug().Str("component", string(bp.Component())).Err(err).Msg("component add failed, model left untouched")
			return err
		}
	}

	m.value = working.value
	m.active = working.active
	m.props = working.props
	m.cache = working.cache
	for _, bp := range bps {
		xlog.Logger.Debug().Str("component", string(bp.Component())).Msg("component added")
	}
	return nil
}

// Plus returns a new Model with bp added, leaving m untouched — the
// "model += blueprint produces a new model" surface from spec.md §6.
func (m *Model) Plus(bps ...Blueprint) (*Model, error) {
	m.mu.RLock()
	next := m.clone()
	m.mu.RUnlock()

	for _, bp := range bps {
		if err := addOne(next, bp); err != nil {
			return nil, err
		}
	}
	return next, nil
}

func addOne(working *Model, bp Blueprint) error {
	tag := bp.Component()

	if err := bp.EarlyCheck(); err != nil {
		return &BlueprintCheckFailureError{Component: tag, Message: err.Error(), Err: err}
	}

	if working.active[tag] {
		return &ComponentConflictError{A: tag, B: tag}
	}
	for other := range working.active {
		if working.registry.conflictsWith(tag, other) {
			return &ComponentConflictError{A: tag, B: other}
		}
	}

	for _, req := range bp.Requires() {
		if !working.active[req] {
			return &MissingRequirementError{Component: req}
		}
	}

	for _, b := range bp.Brings() {
		switch b.Kind {
		case Embedded:
			if working.active[b.Tag] {
				return &ComponentConflictError{A: b.Tag, B: b.Tag}
			}
			if err := addOne(working, b.Default()); err != nil {
				return err
			}
		case Implied:
			if !working.active[b.Tag] {
				if err := addOne(working, b.Default()); err != nil {
					return err
				}
			}
		}
	}

	if err := bp.LateCheck(working); err != nil {
		return &BlueprintCheckFailureError{Component: tag, Message: err.Error(), Err: err}
	}
	if err := bp.Expand(working); err != nil {
		return err
	}
	working.active[tag] = true
	return nil
}
