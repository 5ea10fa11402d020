package generator

import "errors"

// ErrGenerationFailed is returned when no sampled candidate satisfied the
// requested tolerance/constraints within iter_max attempts.
var ErrGenerationFailed = errors.New("generator: no candidate foodweb satisfied target within iter_max attempts")
