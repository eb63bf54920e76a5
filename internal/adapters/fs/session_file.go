package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bft-labs/corelink/internal/domain"
)

const sessionFileName = "session.json"

// SessionFileRepository persists the active driver session as a JSON file.
// The record is written when setup completes and cleared by teardown, so a
// leftover file after a crash identifies the session that was never closed.
type SessionFileRepository struct {
	dir string
}

// NewSessionFileRepository creates a repository rooted at the given directory.
func NewSessionFileRepository(dir string) *SessionFileRepository {
	return &SessionFileRepository{dir: dir}
}

// Load retrieves the persisted session from disk.
// Returns an empty session and nil error if no session file exists.
func (r *SessionFileRepository) Load() (domain.Session, error) {
	data, err := os.ReadFile(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, nil
		}
		return domain.Session{}, err
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, err
	}

	return sess, nil
}

// Save persists the session atomically.
// Uses atomic write (write to temp file, then rename) to prevent corruption.
func (r *SessionFileRepository) Save(sess domain.Session) error {
	// Ensure directory exists
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	path := r.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmp, path)
}

// Clear removes the session file. Missing files are not an error.
func (r *SessionFileRepository) Clear() error {
	if err := os.Remove(r.Path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the full path to the session file.
func (r *SessionFileRepository) Path() string {
	return filepath.Join(r.dir, sessionFileName)
}
