package alias

import (
	"fmt"
	"sort"
)

// Map is an immutable, validated mapping from canonical keys to the set of
// reference strings ("aliases") that standardize to them.
//
// Complexity: Standardize and References are O(1) and O(k) respectively,
// where k is the number of aliases for a key (aliases are sorted once, in
// New).
type Map struct {
	// toKey resolves any alias (including the canonical key itself) to its
	// canonical key.
	toKey map[string]string
	// aliasesOf holds, for each canonical key, every alias registered for
	// it (the canonical key included), sorted by length then lexically.
	aliasesOf map[string][]string
	// order preserves the key registration order for deterministic iteration.
	order []string
}

// New builds a Map from a table of canonical key -> extra aliases.
// The canonical key itself is always an implicit alias for its entry and
// need not be repeated in the slice.
//
// Errors:
//   - ErrDuplicateAlias if the same alias string appears twice under one key
//     (including the key standing in for itself).
//   - ErrAmbiguousAlias if the same alias string is registered under two
//     different keys.
func New(table map[string][]string) (*Map, error) {
	m := &Map{
		toKey:     make(map[string]string, len(table)),
		aliasesOf: make(map[string][]string, len(table)),
		order:     make([]string, 0, len(table)),
	}

	// Deterministic registration order: sort keys so construction errors are
	// reproducible regardless of Go's randomized map iteration.
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		m.order = append(m.order, key)
		seen := map[string]struct{}{key: {}}
		aliases := append([]string{key}, table[key]...)
		for _, a := range table[key] {
			if _, dup := seen[a]; dup {
				return nil, fmt.Errorf("alias: key %q: alias %q: %w", key, a, ErrDuplicateAlias)
			}
			seen[a] = struct{}{}
		}
		for _, a := range aliases {
			if existing, taken := m.toKey[a]; taken && existing != key {
				return nil, fmt.Errorf("alias: %q claimed by both %q and %q: %w", a, existing, key, ErrAmbiguousAlias)
			}
			m.toKey[a] = key
		}
		sort.Slice(aliases, func(i, j int) bool {
			if len(aliases[i]) != len(aliases[j]) {
				return len(aliases[i]) < len(aliases[j])
			}
			return aliases[i] < aliases[j]
		})
		m.aliasesOf[key] = aliases
	}

	return m, nil
}

// Standardize resolves ref (a canonical key or any of its aliases) to its
// canonical key.
func (m *Map) Standardize(ref string) (string, error) {
	key, ok := m.toKey[ref]
	if !ok {
		return "", fmt.Errorf("alias: %q: %w", ref, ErrUnknownAlias)
	}
	return key, nil
}

// References returns every alias registered for key (including key itself),
// sorted by length then lexicographically. Returns nil if key is unknown.
func (m *Map) References(key string) []string {
	aliases, ok := m.aliasesOf[key]
	if !ok {
		return nil
	}
	out := make([]string, len(aliases))
	copy(out, aliases)
	return out
}

// Keys returns the canonical keys in registration order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
