package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"travel-check-service/internal/api/dto"
	"travel-check-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// parseObservation turns a request observation into a domain value. The
// timestamp is parsed here so a malformed instant produces a message naming
// the field, matching the coordinate validator's diagnostics.
func parseObservation(field string, in dto.ObservationRequest) (domain.Observation, error) {
	ts, err := time.Parse(time.RFC3339, in.Timestamp)
	if err != nil {
		return domain.Observation{}, &domain.InvalidTimestampError{Field: field}
	}

	return domain.Observation{
		Timestamp: ts,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}, nil
}

// feasibilityResponse maps the domain verdict onto the wire shape,
// translating an infinite required speed to null.
func feasibilityResponse(result domain.FeasibilityResult) dto.FeasibilityResponse {
	res := dto.FeasibilityResponse{
		Possible:              result.Possible,
		MaxAllowedSpeedKmh:    result.MaxAllowedSpeedKmh,
		DistanceKm:            result.DistanceKm,
		TimeDifferenceMinutes: result.TimeDifferenceMinutes,
	}

	if !math.IsInf(result.RequiredSpeedKmh, 1) {
		speed := result.RequiredSpeedKmh
		res.RequiredSpeedKmh = &speed
	}

	return res
}
