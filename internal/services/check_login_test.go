package services

import (
	"context"
	"testing"
	"time"

	"travel-check-service/internal/adapters/repositories"
	"travel-check-service/internal/domain"
)

func TestCheckLoginFirstSeen(t *testing.T) {
	repo := repositories.NewMockLoginEventRepository()

	result, err := CheckLogin(context.Background(), CheckLoginRequest{
		AccountID:   "acct-1",
		Observation: obsAt(noon, 40.7128, -74.0060),
		Config:      domain.DefaultEvaluationConfig(),
	}, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.FirstSeen {
		t.Error("expected FirstSeen for an account with no history")
	}
	if result.Verdict != nil {
		t.Errorf("expected no verdict, got %+v", result.Verdict)
	}
	if result.EventID == 0 {
		t.Error("expected an assigned event id")
	}

	stored, err := repo.LastEvent(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected the login to be recorded")
	}
}

func TestCheckLoginFlagsImpossibleTravel(t *testing.T) {
	repo := repositories.NewMockLoginEventRepository()
	ctx := context.Background()

	first := CheckLoginRequest{
		AccountID:   "acct-1",
		Observation: obsAt(noon, 40.7128, -74.0060),
		Config:      domain.DefaultEvaluationConfig(),
	}
	if _, err := CheckLogin(ctx, first, repo, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ten minutes later from the other coast.
	second := CheckLoginRequest{
		AccountID:   "acct-1",
		Observation: obsAt(noon.Add(10*time.Minute), 34.0522, -118.2437),
		Config:      domain.DefaultEvaluationConfig(),
	}
	result, err := CheckLogin(ctx, second, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FirstSeen {
		t.Error("second login must not be FirstSeen")
	}
	if result.Verdict == nil {
		t.Fatal("expected a verdict against the previous login")
	}
	if result.Verdict.Possible {
		t.Errorf("NYC->LA in 10 minutes should be impossible, got %+v", result.Verdict)
	}
	if result.Previous == nil || result.Previous.Latitude != 40.7128 {
		t.Errorf("Previous = %+v, want the first observation", result.Previous)
	}
}

func TestCheckLoginAllowsPlausibleTravel(t *testing.T) {
	repo := repositories.NewMockLoginEventRepository()
	ctx := context.Background()

	logins := []CheckLoginRequest{
		{
			AccountID:   "acct-2",
			Observation: obsAt(noon, 51.5074, -0.1278),
			Config:      domain.DefaultEvaluationConfig(),
		},
		{
			// London to Paris in three hours is an easy train ride.
			AccountID:   "acct-2",
			Observation: obsAt(noon.Add(3*time.Hour), 48.8566, 2.3522),
			Config:      domain.DefaultEvaluationConfig(),
		},
	}

	var last *CheckLoginResult
	for _, req := range logins {
		result, err := CheckLogin(ctx, req, repo, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last = result
	}

	if last.Verdict == nil {
		t.Fatal("expected a verdict")
	}
	if !last.Verdict.Possible {
		t.Errorf("London->Paris in 3h should be possible, got %+v", last.Verdict)
	}
}

func TestCheckLoginValidatesInput(t *testing.T) {
	repo := repositories.NewMockLoginEventRepository()
	ctx := context.Background()

	if _, err := CheckLogin(ctx, CheckLoginRequest{
		AccountID:   "  ",
		Observation: obsAt(noon, 0, 0),
		Config:      domain.DefaultEvaluationConfig(),
	}, repo, nil); err == nil {
		t.Error("expected error for blank account id")
	}

	if _, err := CheckLogin(ctx, CheckLoginRequest{
		AccountID:   "acct-3",
		Observation: obsAt(noon, 120, 0),
		Config:      domain.DefaultEvaluationConfig(),
	}, repo, nil); err == nil {
		t.Error("expected error for out-of-range latitude")
	} else if !IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}
