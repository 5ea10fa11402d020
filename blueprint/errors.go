package blueprint

import "fmt"

// MissingRequirementError reports that a blueprint requires a component not
// present (and not reachable via implies) in the model or current batch.
type MissingRequirementError struct {
	Component Tag
}

func (e *MissingRequirementError) Error() string {
	return fmt.Sprintf("blueprint: missing required component %q", e.Component)
}

// ComponentConflictError reports that a blueprint's component conflicts with
// one already active on the model.
type ComponentConflictError struct {
	A, B Tag
}

func (e *ComponentConflictError) Error() string {
	return fmt.Sprintf("blueprint: component %q conflicts with already-active component %q", e.A, e.B)
}

// BlueprintCheckFailureError reports an early- or late-check failure, with a
// human-readable message describing the offending value.
type BlueprintCheckFailureError struct {
	Component Tag
	Message   string
	Err       error
}

func (e *BlueprintCheckFailureError) Error() string {
	return fmt.Sprintf("blueprint: %q check failed: %s", e.Component, e.Message)
}

// Unwrap exposes the check's own error, so errors.Is/errors.As still match
// the sentinel the blueprint's check returned.
func (e *BlueprintCheckFailureError) Unwrap() error { return e.Err }

// ReadOnlyError reports a write attempt on a non-terminal (read-only)
// property.
type ReadOnlyError struct {
	Path string
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("blueprint: property %q is read-only", e.Path)
}

// PropertyNotAvailableError reports access to a property whose owning
// component is not active on the model.
type PropertyNotAvailableError struct {
	Path string
}

func (e *PropertyNotAvailableError) Error() string {
	return fmt.Sprintf("blueprint: property %q is not available (component not active)", e.Path)
}
