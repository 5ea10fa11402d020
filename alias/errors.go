package alias

import "errors"

// Sentinel errors for alias map construction and lookup.
var (
	// ErrUnknownAlias indicates standardize was called with a reference that
	// matches no registered key or alias.
	ErrUnknownAlias = errors.New("alias: unknown alias")

	// ErrDuplicateAlias indicates the same alias string was registered twice
	// for the same key.
	ErrDuplicateAlias = errors.New("alias: duplicate alias for key")

	// ErrAmbiguousAlias indicates an alias string was registered for two
	// different keys.
	ErrAmbiguousAlias = errors.New("alias: ambiguous alias shared by two keys")
)
