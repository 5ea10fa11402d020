package topology

import "errors"

// Sentinel errors for topology construction and queries.
var (
	// ErrUnknownCompartment indicates a node or edge compartment name was
	// never registered.
	ErrUnknownCompartment = errors.New("topology: unknown compartment")

	// ErrOutOfBounds indicates a relative node index fell outside its
	// compartment's size.
	ErrOutOfBounds = errors.New("topology: index out of bounds")

	// ErrNodeNotLive indicates an operation targeted a tombstoned node.
	ErrNodeNotLive = errors.New("topology: node is not live")

	// ErrCompartmentExists indicates an attempt to register a compartment
	// name already in use.
	ErrCompartmentExists = errors.New("topology: compartment already exists")
)
