package repositories

import (
	"context"
	"sync"

	"travel-check-service/internal/domain"
)

// MockLoginEventRepository is an in-memory LoginEventRepository for tests
// and local composition without a database.
type MockLoginEventRepository struct {
	mu     sync.Mutex
	nextID int64
	events map[string][]*domain.LoginEvent
}

func NewMockLoginEventRepository() *MockLoginEventRepository {
	return &MockLoginEventRepository{
		nextID: 1,
		events: make(map[string][]*domain.LoginEvent),
	}
}

func (m *MockLoginEventRepository) RecordEvent(ctx context.Context, event *domain.LoginEvent) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *event
	stored.EventID = m.nextID
	m.nextID++
	m.events[stored.AccountID] = append(m.events[stored.AccountID], &stored)

	return stored.EventID, nil
}

func (m *MockLoginEventRepository) LastEvent(ctx context.Context, accountID string) (*domain.LoginEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var last *domain.LoginEvent
	for _, e := range m.events[accountID] {
		if last == nil || e.Observation.Timestamp.After(last.Observation.Timestamp) {
			last = e
		}
	}
	if last == nil {
		return nil, nil
	}

	out := *last
	return &out, nil
}

func (m *MockLoginEventRepository) ListEvents(ctx context.Context, accountID string, limit int) ([]*domain.LoginEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.events[accountID]
	out := make([]*domain.LoginEvent, 0, len(stored))
	for i := len(stored) - 1; i >= 0 && len(out) < limit; i-- {
		e := *stored[i]
		out = append(out, &e)
	}

	return out, nil
}
