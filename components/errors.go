package components

import "errors"

var (
	// ErrEmptySpecies is returned when a Species blueprint names zero species.
	ErrEmptySpecies = errors.New("components: species list must be non-empty")
	// ErrDuplicateLabel is returned when two species share a label.
	ErrDuplicateLabel = errors.New("components: duplicate species label")
	// ErrDimensionMismatch is returned when a per-species or per-interaction
	// slice/matrix does not match the model's species count.
	ErrDimensionMismatch = errors.New("components: dimension mismatch against species count")
	// ErrCyclicFoodweb is returned when a structural foodweb blueprint that
	// forbids cycles (the default) is handed a cyclic adjacency.
	ErrCyclicFoodweb = errors.New("components: foodweb contains a cycle")
	// ErrNotAllProducers is returned when a species claims ClassProducer but
	// the foodweb gives it prey, or vice versa.
	ErrNotAllProducers = errors.New("components: producer classification disagrees with foodweb")
	// ErrInvalidRange is returned when a scalar or per-species parameter
	// falls outside its documented domain (e.g. a negative rate).
	ErrInvalidRange = errors.New("components: value outside valid range")
	// ErrUnknownLayer is returned when a non-trophic layer references a name
	// not recognised by package alias.
	ErrUnknownLayer = errors.New("components: unknown non-trophic layer name")
	// ErrLayerDomainViolation is returned when a non-trophic layer's explicit
	// adjacency matrix sets an edge outside that layer's potential-links
	// template (e.g. a competition edge between a producer and a consumer).
	ErrLayerDomainViolation = errors.New("components: non-trophic edge outside layer's potential-links domain")
)
