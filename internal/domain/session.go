package domain

import "time"

// Session identifies a driver session registered with the control plane.
// A session is created by driver setup and closed by driver teardown.
type Session struct {
	// ID is the server-assigned session identifier.
	ID string `json:"session_id"`

	// NodeID is the caller-supplied node identity the session was
	// registered under.
	NodeID string `json:"node_id"`

	// StartedAt is when setup completed.
	StartedAt time.Time `json:"started_at"`
}

// Empty reports whether the session carries no identifier.
func (s Session) Empty() bool {
	return s.ID == ""
}
