package domain

import "fmt"

// InvalidCoordinateError reports a latitude or longitude outside its valid
// range. Field, value, and bounds are carried structurally so callers can
// tell which of the numeric inputs was rejected.
type InvalidCoordinateError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf(
		"invalid %s %v: must be between %v and %v",
		e.Field, e.Value, e.Min, e.Max,
	)
}

// InvalidTimestampError reports an observation whose timestamp is not a
// well-formed instant. Field identifies the offending observation when the
// caller supplied more than one.
type InvalidTimestampError struct {
	Field string
}

func (e *InvalidTimestampError) Error() string {
	if e.Field == "" {
		return "invalid timestamp: a genuine instant is required"
	}
	return fmt.Sprintf("invalid timestamp for %s: a genuine instant is required", e.Field)
}
