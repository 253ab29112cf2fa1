package domain

// Named defaults for the evaluation configuration. The max speed ceiling
// exceeds common commercial flight speeds while still excluding physically
// impossible short-interval jumps.
const (
	DefaultMaxSpeedKmh      = 1200.0
	DefaultDecimalPrecision = 2
)

// EvaluationConfig carries the per-call feasibility parameters. It is passed
// by value on every call; there is no process-wide default that one caller
// could mutate and another observe.
type EvaluationConfig struct {
	// MaxSpeedKmh is the feasibility ceiling; must be positive.
	MaxSpeedKmh float64
	// DecimalPrecision is the number of fractional digits kept on the
	// returned numeric fields; must be non-negative. Intermediate
	// arithmetic is never rounded.
	DecimalPrecision int
}

// DefaultEvaluationConfig returns the standard ceiling and precision.
func DefaultEvaluationConfig() EvaluationConfig {
	return EvaluationConfig{
		MaxSpeedKmh:      DefaultMaxSpeedKmh,
		DecimalPrecision: DefaultDecimalPrecision,
	}
}

// FeasibilityResult is the verdict for one pair of observations. Produced
// fresh per evaluation, never mutated after construction.
type FeasibilityResult struct {
	// Possible is true iff the required speed does not exceed the ceiling
	// (or the two observations coincide in space and time).
	Possible bool
	// RequiredSpeedKmh is +Inf when the elapsed time is zero but the
	// locations differ.
	RequiredSpeedKmh   float64
	MaxAllowedSpeedKmh float64
	DistanceKm         float64
	// TimeDifferenceMinutes is the absolute elapsed time; never negative.
	TimeDifferenceMinutes float64
}
