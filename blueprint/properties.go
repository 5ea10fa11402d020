package blueprint

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a named, optionally-writable accessor registered by a
// Component when it expands. Paths are dotted ("trophic.matrix",
// "nutrients.turnover"); a leading underscore segment marks an internal
// property hidden from Properties()'s listing.
type Property struct {
	// Component is the owning component; Get/Set on a property whose
	// component is no longer active fails with PropertyNotAvailableError.
	// (In this framework components are never removed once added, so this
	// only matters for properties registered speculatively; kept for
	// completeness and future-proofing against removable components.)
	Component Tag
	Read      func(m *Model) (any, error)
	// Write is nil for read-only (including "non-terminal": a property
	// whose write would invalidate derived data) properties.
	Write func(m *Model, v any) error
}

// RegisterProperty installs p under path. Called by a Blueprint's Expand.
func (m *Model) RegisterProperty(path string, p Property) {
	m.props[path] = p
}

// Properties lists every registered property path whose leading segment
// does not start with "_", sorted.
func (m *Model) Properties() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.props))
	for path := range m.props {
		if isInternalPath(path) {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func isInternalPath(path string) bool {
	head := path
	if i := strings.IndexByte(path, '.'); i >= 0 {
		head = path[:i]
	}
	return strings.HasPrefix(head, "_")
}

// Get reads the property at path.
func (m *Model) Get(path string) (any, error) {
	m.mu.RLock()
	prop, ok := m.props[path]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("blueprint: Get(%q): %w", path, &PropertyNotAvailableError{Path: path})
	}
	if prop.Component != "" && !m.IsActive(prop.Component) {
		return nil, &PropertyNotAvailableError{Path: path}
	}
	return prop.Read(m)
}

// Set writes v to the property at path. Returns ReadOnlyError if the
// property has no Write function.
func (m *Model) Set(path string, v any) error {
	m.mu.RLock()
	prop, ok := m.props[path]
	m.mu.RUnlock()
	if !ok {
		return &PropertyNotAvailableError{Path: path}
	}
	if prop.Write == nil {
		return &ReadOnlyError{Path: path}
	}
	if err := prop.Write(m, v); err != nil {
		return err
	}
	m.mu.Lock()
	m.cache = make(map[string]any)
	m.mu.Unlock()
	return nil
}

// CacheGet returns the cached value for key, if any was populated by a
// previous CacheSet and not since invalidated by a Set call.
func (m *Model) CacheGet(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.cache[key]
	return v, ok
}

// CacheSet lazily populates the specialization cache entry for key.
func (m *Model) CacheSet(key string, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[key] = v
}
