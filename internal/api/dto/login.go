package dto

import "time"

type LoginCheckRequest struct {
	AccountID        string  `json:"account_id"`
	Timestamp        string  `json:"timestamp"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	MaxSpeedKmh      float64 `json:"max_speed_kmh"`
	DecimalPrecision *int    `json:"decimal_precision"`
}

type ObservationResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type LoginCheckResponse struct {
	EventID   int64                `json:"event_id"`
	FirstSeen bool                 `json:"first_seen"`
	Previous  *ObservationResponse `json:"previous,omitempty"`
	Verdict   *FeasibilityResponse `json:"verdict,omitempty"`
}

type LoginEventResponse struct {
	EventID   int64     `json:"event_id"`
	AccountID string    `json:"account_id"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type ListLoginEventsResponse struct {
	Events []LoginEventResponse `json:"events"`
}
