package view

import "errors"

// Sentinel errors for view access, shared by Vec and Mat facades.
var (
	// ErrOutOfBounds indicates an index fell outside [0, size).
	ErrOutOfBounds = errors.New("view: index out of bounds")

	// ErrReadOnly indicates a write was attempted on a read-only facade.
	ErrReadOnly = errors.New("view: read-only")

	// ErrTemplateViolation indicates a write targeted an index the template
	// marks as structurally absent.
	ErrTemplateViolation = errors.New("view: template violation")

	// ErrUnknownLabel indicates a labelled lookup used a label with no
	// registered index.
	ErrUnknownLabel = errors.New("view: unknown label")

	// ErrDimensionMismatch indicates two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("view: dimension mismatch")
)
