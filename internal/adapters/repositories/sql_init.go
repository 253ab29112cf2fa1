package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the login event schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLoginEventsQuery := `
	CREATE TABLE IF NOT EXISTS login_events (
		event_id BIGSERIAL PRIMARY KEY,
		account_id TEXT NOT NULL,
		observed_at TIMESTAMPTZ NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_login_events_account_observed
	ON login_events(account_id, observed_at DESC);
	`

	statements := []string{
		createLoginEventsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LoginEventSeed struct {
	AccountID  string    `json:"account_id"`
	ObservedAt time.Time `json:"observed_at"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// Populate the database with login events from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed login events: read %q: %w", jsonPath, err)
	}

	var data []LoginEventSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed login events: parse json: %w", err)
	}

	rows := make([]LoginEventSeed, 0, len(data))
	for i, item := range data {
		accountID := strings.TrimSpace(item.AccountID)
		if accountID == "" {
			return fmt.Errorf("seed login events: item at index %d: account_id cannot be empty", i+1)
		}

		if item.ObservedAt.IsZero() {
			return fmt.Errorf("seed login events: item at index %d: observed_at cannot be empty", i+1)
		}

		rows = append(rows, LoginEventSeed{
			AccountID:  accountID,
			ObservedAt: item.ObservedAt,
			Latitude:   item.Latitude,
			Longitude:  item.Longitude,
		})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed login events: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO login_events (account_id, observed_at, latitude, longitude)
	VALUES ($1, $2, $3, $4);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed login events: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.AccountID, r.ObservedAt.UTC(), r.Latitude, r.Longitude); err != nil {
			return fmt.Errorf("seed login events: insert account_id=%q: %w", r.AccountID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed login events: commit tx: %w", err)
	}

	return nil
}
