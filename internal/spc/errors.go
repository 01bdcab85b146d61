package spc

import "fmt"

// ConstructionError reports input whose shape makes an object impossible
// to build: a ragged subgroup matrix, a subgroup size outside the
// constants table, mismatched label counts. Never retried; the caller
// must fix the input.
type ConstructionError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("spc: %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationError reports well-shaped but contradictory input, such as a
// target outside a bilateral specification.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("spc: %s: %s (got %v)", e.Field, e.Message, e.Value)
}

// InsufficientDataError reports a calibration dataset too small for the
// requested chart type.
type InsufficientDataError struct {
	Chart    string
	Got      int
	Required int
}

// Error implements the error interface
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("spc: %s chart needs at least %d calibration points, got %d",
		e.Chart, e.Required, e.Got)
}

// MissingLimitError reports a capability study requested against a
// specification that is not fully bilateral. Capability ratios are
// meaningless unilaterally, so this is an error rather than a NaN result.
type MissingLimitError struct {
	Limit string // "lower", "upper" or "both"
}

// Error implements the error interface
func (e *MissingLimitError) Error() string {
	return fmt.Sprintf("spc: capability study requires both specification limits, %s missing", e.Limit)
}
