package domain

// Represents a single recorded login for an account.
// EventID is assigned by the store on insert; the Observation is the
// timestamped location the authentication pipeline attributed to the login.
type LoginEvent struct {
	EventID     int64
	AccountID   string
	Observation Observation
}
