package ports

import (
	"context"

	"travel-check-service/internal/domain"
)

// Port: a boundary for storing and retrieving login events.
type LoginEventRepository interface {
	// Persist one event and return its assigned id.
	RecordEvent(ctx context.Context, event *domain.LoginEvent) (int64, error)
	// Return the most recent event for an account, or nil when none exists.
	LastEvent(ctx context.Context, accountID string) (*domain.LoginEvent, error)
	// Return up to limit events for an account, newest first.
	ListEvents(ctx context.Context, accountID string, limit int) ([]*domain.LoginEvent, error)
}
