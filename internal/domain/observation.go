package domain

import "time"

// Coordinate bounds accepted by the validator.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Immutable timestamped location. One Observation corresponds to a single
// recorded event (e.g., a login) placed at a point in time and space.
// Timestamps are absolute instants; no wall-clock or timezone semantics.
type Observation struct {
	Timestamp time.Time
	Latitude  float64
	Longitude float64
}

// SamePlace reports whether two observations carry identical coordinates.
func (o Observation) SamePlace(other Observation) bool {
	return o.Latitude == other.Latitude && o.Longitude == other.Longitude
}

// ValidateCoordinates confirms a latitude/longitude pair is within range.
// The returned error names the offending field, its value, and the violated
// bounds; callers rely on that for diagnostics.
func ValidateCoordinates(lat, lon float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return &InvalidCoordinateError{
			Field: "latitude",
			Value: lat,
			Min:   MinLatitude,
			Max:   MaxLatitude,
		}
	}

	if lon < MinLongitude || lon > MaxLongitude {
		return &InvalidCoordinateError{
			Field: "longitude",
			Value: lon,
			Min:   MinLongitude,
			Max:   MaxLongitude,
		}
	}

	return nil
}

// Validate checks that the observation carries a genuine instant and
// in-range coordinates.
func (o Observation) Validate() error {
	if o.Timestamp.IsZero() {
		return &InvalidTimestampError{}
	}

	return ValidateCoordinates(o.Latitude, o.Longitude)
}
