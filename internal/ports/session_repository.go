package ports

import "github.com/bft-labs/corelink/internal/domain"

// SessionRepository persists the active driver session across process
// crashes. A leftover record identifies a session that was never closed.
type SessionRepository interface {
	// Load retrieves the persisted session. Implementations return an
	// empty session, not an error, when no record exists.
	Load() (domain.Session, error)

	// Save persists the session.
	Save(sess domain.Session) error

	// Clear removes the persisted session. Missing records are not an
	// error.
	Clear() error
}
