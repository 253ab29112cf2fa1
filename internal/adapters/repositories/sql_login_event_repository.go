package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-check-service/internal/domain"
	"travel-check-service/internal/platform/obs"
)

// SQLLoginEventRepository is a Postgres-backed implementation of the
// LoginEventRepository port. Events are append-only; "last" means the
// chronologically latest observation, not the latest insert.
type SQLLoginEventRepository struct {
	DB *sql.DB
}

func NewSQLLoginEventRepository(db *sql.DB) *SQLLoginEventRepository {
	return &SQLLoginEventRepository{DB: db}
}

// Persist one login event and return its assigned id.
func (s *SQLLoginEventRepository) RecordEvent(
	ctx context.Context,
	event *domain.LoginEvent,
) (_ int64, err error) {
	defer obs.Time(ctx, "repo.RecordEvent")(&err)

	if s.DB == nil {
		return 0, errors.New("login event repository: db is nil")
	}
	if event == nil {
		return 0, errors.New("record event: event must be non-nil")
	}

	accountID := strings.TrimSpace(event.AccountID)
	if accountID == "" {
		return 0, errors.New("record event: account id must be non-empty")
	}
	if event.Observation.Timestamp.IsZero() {
		return 0, errors.New("record event: observation timestamp must be set")
	}

	query := `
	INSERT INTO login_events (account_id, observed_at, latitude, longitude)
	VALUES ($1, $2, $3, $4)
	RETURNING event_id;
	`

	var id int64
	err = s.DB.QueryRowContext(
		ctx, query,
		accountID,
		event.Observation.Timestamp.UTC(),
		event.Observation.Latitude,
		event.Observation.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("record event: insert login_events row: %w", err)
	}

	return id, nil
}

// Return the chronologically latest event for an account, or nil when the
// account has no recorded events.
func (s *SQLLoginEventRepository) LastEvent(
	ctx context.Context,
	accountID string,
) (_ *domain.LoginEvent, err error) {
	defer obs.Time(ctx, "repo.LastEvent")(&err)

	if s.DB == nil {
		return nil, errors.New("login event repository: db is nil")
	}
	if strings.TrimSpace(accountID) == "" {
		return nil, errors.New("last event: account id must be non-empty")
	}

	query := `
	SELECT event_id, account_id, observed_at, latitude, longitude
	FROM login_events
	WHERE account_id = $1
	ORDER BY observed_at DESC, event_id DESC
	LIMIT 1;
	`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last event: query login_events: %w", err)
	}

	return event, nil
}

// Return up to limit events for an account, newest first.
func (s *SQLLoginEventRepository) ListEvents(
	ctx context.Context,
	accountID string,
	limit int,
) (_ []*domain.LoginEvent, err error) {
	defer obs.Time(ctx, "repo.ListEvents")(&err)

	if s.DB == nil {
		return nil, errors.New("login event repository: db is nil")
	}
	if strings.TrimSpace(accountID) == "" {
		return nil, errors.New("list events: account id must be non-empty")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("list events: limit must be positive, got %d", limit)
	}

	query := `
	SELECT event_id, account_id, observed_at, latitude, longitude
	FROM login_events
	WHERE account_id = $1
	ORDER BY observed_at DESC, event_id DESC
	LIMIT $2;
	`

	rows, err := s.DB.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: query login_events: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.LoginEvent, 0, limit)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("list events: scan row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: row iteration: %w", err)
	}

	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.LoginEvent, error) {
	var event domain.LoginEvent
	err := row.Scan(
		&event.EventID,
		&event.AccountID,
		&event.Observation.Timestamp,
		&event.Observation.Latitude,
		&event.Observation.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
