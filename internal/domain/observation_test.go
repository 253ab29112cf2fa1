package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		wantField string // empty means valid
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "north pole", lat: 90, lon: 0},
		{name: "south pole", lat: -90, lon: 0},
		{name: "date line east", lat: 0, lon: 180},
		{name: "date line west", lat: 0, lon: -180},
		{name: "latitude above range", lat: 90.0001, lon: 0, wantField: "latitude"},
		{name: "latitude below range", lat: -91, lon: 0, wantField: "latitude"},
		{name: "longitude above range", lat: 0, lon: 180.5, wantField: "longitude"},
		{name: "longitude below range", lat: 0, lon: -200, wantField: "longitude"},
		{name: "both invalid reports latitude first", lat: 100, lon: 200, wantField: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lon)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var coordErr *InvalidCoordinateError
			if !errors.As(err, &coordErr) {
				t.Fatalf("expected InvalidCoordinateError, got %v", err)
			}
			if coordErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", coordErr.Field, tt.wantField)
			}
		})
	}
}

// The error message must carry the offending value and the violated bounds;
// callers depend on it for diagnostics.
func TestInvalidCoordinateErrorMessage(t *testing.T) {
	err := ValidateCoordinates(95.5, 0)
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, want := range []string{"latitude", "95.5", "-90", "90"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestObservationValidate(t *testing.T) {
	valid := Observation{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  40.7128,
		Longitude: -74.0060,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := Observation{Latitude: 40.7128, Longitude: -74.0060}
	var tsErr *InvalidTimestampError
	if err := missing.Validate(); !errors.As(err, &tsErr) {
		t.Fatalf("expected InvalidTimestampError, got %v", err)
	}

	badCoords := valid
	badCoords.Longitude = -190
	var coordErr *InvalidCoordinateError
	if err := badCoords.Validate(); !errors.As(err, &coordErr) {
		t.Fatalf("expected InvalidCoordinateError, got %v", err)
	}
}
