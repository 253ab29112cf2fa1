package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"travel-check-service/internal/domain"
	"travel-check-service/internal/platform/obs"
	"travel-check-service/internal/ports"
)

type CheckLoginRequest struct {
	AccountID   string
	Observation domain.Observation
	Config      domain.EvaluationConfig
}

// CheckLoginResult pairs the recorded event with the feasibility verdict
// against the account's previous login. Verdict and Previous are nil for the
// first login ever seen for the account.
type CheckLoginResult struct {
	EventID   int64
	FirstSeen bool
	Previous  *domain.Observation
	Verdict   *domain.FeasibilityResult
}

// CheckLogin records a fresh login observation for an account and evaluates
// it against the previous one.
//
// Lookup order is cache first, repository second (cache may be nil). The new
// event is recorded regardless of the verdict; callers decide what to do
// with an infeasible result. Identity correlation is the caller's job: both
// observations of one evaluation are simply whatever was stored and supplied
// under the same account id.
func CheckLogin(
	ctx context.Context,
	req CheckLoginRequest,
	repo ports.LoginEventRepository,
	cache ports.LocationCache,
) (_ *CheckLoginResult, err error) {
	defer obs.Time(ctx, "services.CheckLogin")(&err)

	accountID := strings.TrimSpace(req.AccountID)
	if accountID == "" {
		return nil, errors.New("check login: account id must be non-empty")
	}

	if err := req.Observation.Validate(); err != nil {
		return nil, fmt.Errorf("check login: %w", err)
	}

	previous, err := lastObservation(ctx, accountID, repo, cache)
	if err != nil {
		return nil, fmt.Errorf("check login: last observation for %q: %w", accountID, err)
	}

	var verdict *domain.FeasibilityResult
	if previous != nil {
		result, err := EvaluateTravel(*previous, req.Observation, req.Config)
		if err != nil {
			return nil, fmt.Errorf("check login: %w", err)
		}
		verdict = &result
	}

	eventID, err := repo.RecordEvent(ctx, &domain.LoginEvent{
		AccountID:   accountID,
		Observation: req.Observation,
	})
	if err != nil {
		return nil, fmt.Errorf("check login: record event for %q: %w", accountID, err)
	}

	// Cache write failures are logged, not fatal: the repository remains
	// the source of truth. Skip the write when the event arrived out of
	// order so the cache keeps the chronologically latest observation.
	if cache != nil && (previous == nil || !req.Observation.Timestamp.Before(previous.Timestamp)) {
		if err := cache.SetLastObservation(ctx, accountID, req.Observation); err != nil {
			log.Printf("location cache write failed account=%s err=%v", accountID, err)
		}
	}

	return &CheckLoginResult{
		EventID:   eventID,
		FirstSeen: previous == nil,
		Previous:  previous,
		Verdict:   verdict,
	}, nil
}

func lastObservation(
	ctx context.Context,
	accountID string,
	repo ports.LoginEventRepository,
	cache ports.LocationCache,
) (*domain.Observation, error) {
	if cache != nil {
		cached, ok, err := cache.GetLastObservation(ctx, accountID)
		if err != nil {
			log.Printf("location cache read failed account=%s err=%v", accountID, err)
		} else if ok {
			return cached, nil
		}
	}

	last, err := repo.LastEvent(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}

	observation := last.Observation
	return &observation, nil
}
