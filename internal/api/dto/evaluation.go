package dto

// ObservationRequest is one timestamped location as supplied by a caller.
// Timestamp must be RFC 3339; it is parsed (and rejected) at the handler
// boundary so the error can name the offending field.
type ObservationRequest struct {
	Timestamp string  `json:"timestamp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type EvaluationRequest struct {
	First  ObservationRequest `json:"first"`
	Second ObservationRequest `json:"second"`
	// MaxSpeedKmh defaults to 1200 when absent or zero.
	MaxSpeedKmh float64 `json:"max_speed_kmh"`
	// DecimalPrecision is a pointer because 0 is a meaningful value
	// (round to integers); absent means the default of 2.
	DecimalPrecision *int `json:"decimal_precision"`
}

type FeasibilityResponse struct {
	Possible bool `json:"possible"`
	// RequiredSpeedKmh is null when the required speed is unbounded
	// (zero elapsed time over a nonzero distance); JSON has no encoding
	// for infinity.
	RequiredSpeedKmh      *float64 `json:"required_speed_kmh"`
	MaxAllowedSpeedKmh    float64  `json:"max_allowed_speed_kmh"`
	DistanceKm            float64  `json:"distance_km"`
	TimeDifferenceMinutes float64  `json:"time_difference_minutes"`
}
