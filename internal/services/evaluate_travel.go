package services

import (
	"errors"
	"fmt"
	"math"

	"travel-check-service/internal/domain"
)

// EvaluateTravel decides whether the travel implied by two timestamped
// observations is physically possible under cfg.MaxSpeedKmh.
//
// The order of the two arguments is irrelevant: the function normalizes
// chronological order internally. When the timestamps are exactly equal the
// first argument is treated as earlier; the choice is arbitrary but fixed.
//
// The computation is pure and single-pass: no state survives the call, and
// identical inputs always yield identical results. All failures are
// validation failures raised before any result is constructed.
func EvaluateTravel(a, b domain.Observation, cfg domain.EvaluationConfig) (domain.FeasibilityResult, error) {
	var zero domain.FeasibilityResult

	if cfg.MaxSpeedKmh <= 0 {
		return zero, fmt.Errorf("evaluate travel: max speed must be positive, got %v", cfg.MaxSpeedKmh)
	}
	if cfg.DecimalPrecision < 0 {
		return zero, fmt.Errorf("evaluate travel: decimal precision must be non-negative, got %d", cfg.DecimalPrecision)
	}

	if a.Timestamp.IsZero() {
		return zero, &domain.InvalidTimestampError{Field: "first observation"}
	}
	if b.Timestamp.IsZero() {
		return zero, &domain.InvalidTimestampError{Field: "second observation"}
	}

	// Validate both coordinate pairs before branching so out-of-range input
	// is rejected even on paths that never compute a distance.
	if err := domain.ValidateCoordinates(a.Latitude, a.Longitude); err != nil {
		return zero, fmt.Errorf("first observation: %w", err)
	}
	if err := domain.ValidateCoordinates(b.Latitude, b.Longitude); err != nil {
		return zero, fmt.Errorf("second observation: %w", err)
	}

	earlier, later := a, b
	if b.Timestamp.Before(a.Timestamp) {
		earlier, later = b, a
	}

	elapsedMinutes := later.Timestamp.Sub(earlier.Timestamp).Minutes()

	if elapsedMinutes == 0 {
		if earlier.SamePlace(later) {
			return domain.FeasibilityResult{
				Possible:           true,
				MaxAllowedSpeedKmh: cfg.MaxSpeedKmh,
			}, nil
		}

		// Nonzero displacement in zero elapsed time is infinite speed,
		// unconditionally infeasible.
		distanceKm, err := domain.Distance(
			earlier.Latitude, earlier.Longitude,
			later.Latitude, later.Longitude,
		)
		if err != nil {
			return zero, fmt.Errorf("evaluate travel: %w", err)
		}

		return domain.FeasibilityResult{
			Possible:           false,
			RequiredSpeedKmh:   math.Inf(1),
			MaxAllowedSpeedKmh: cfg.MaxSpeedKmh,
			DistanceKm:         roundTo(distanceKm, cfg.DecimalPrecision),
		}, nil
	}

	distanceKm, err := domain.Distance(
		earlier.Latitude, earlier.Longitude,
		later.Latitude, later.Longitude,
	)
	if err != nil {
		return zero, fmt.Errorf("evaluate travel: %w", err)
	}

	requiredSpeedKmh := distanceKm / (elapsedMinutes / 60)

	// The verdict compares unrounded values; rounding happens only at the
	// output boundary so it can never flip the boolean.
	return domain.FeasibilityResult{
		Possible:              requiredSpeedKmh <= cfg.MaxSpeedKmh,
		RequiredSpeedKmh:      roundTo(requiredSpeedKmh, cfg.DecimalPrecision),
		MaxAllowedSpeedKmh:    cfg.MaxSpeedKmh,
		DistanceKm:            roundTo(distanceKm, cfg.DecimalPrecision),
		TimeDifferenceMinutes: roundTo(elapsedMinutes, cfg.DecimalPrecision),
	}, nil
}

// IsValidationError reports whether evaluation failed because of the caller's
// input rather than an internal fault.
func IsValidationError(err error) bool {
	var coordErr *domain.InvalidCoordinateError
	var tsErr *domain.InvalidTimestampError
	return errors.As(err, &coordErr) || errors.As(err, &tsErr)
}

func roundTo(v float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(v*factor) / factor
}
