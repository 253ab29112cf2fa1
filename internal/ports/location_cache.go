package ports

import (
	"context"

	"travel-check-service/internal/domain"
)

// Contract for caching each account's last known observation.
// A miss is not an error: implementations return (nil, false, nil) so that
// callers fall back to the repository.
type LocationCache interface {
	GetLastObservation(ctx context.Context, accountID string) (*domain.Observation, bool, error)
	SetLastObservation(ctx context.Context, accountID string, obs domain.Observation) error
}
