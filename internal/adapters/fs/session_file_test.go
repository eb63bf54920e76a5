package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/corelink/internal/domain"
)

func TestSessionFileRepository_LoadMissing(t *testing.T) {
	r := NewSessionFileRepository(t.TempDir())

	sess, err := r.Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil for missing file", err)
	}
	if !sess.Empty() {
		t.Errorf("Load() = %+v, want empty session", sess)
	}
}

func TestSessionFileRepository_SaveLoad(t *testing.T) {
	r := NewSessionFileRepository(t.TempDir())

	want := domain.Session{
		ID:        "sess-42",
		NodeID:    "node-1",
		StartedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := r.Save(want); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	got, err := r.Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.ID != want.ID || got.NodeID != want.NodeID || !got.StartedAt.Equal(want.StartedAt) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSessionFileRepository_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	r := NewSessionFileRepository(dir)

	if err := r.Save(domain.Session{ID: "sess-1"}); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if _, err := os.Stat(r.Path()); err != nil {
		t.Errorf("session file missing after Save: %v", err)
	}
}

func TestSessionFileRepository_Clear(t *testing.T) {
	r := NewSessionFileRepository(t.TempDir())

	if err := r.Save(domain.Session{ID: "sess-1"}); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if _, err := os.Stat(r.Path()); !os.IsNotExist(err) {
		t.Errorf("session file still present after Clear")
	}

	// Clearing again is not an error.
	if err := r.Clear(); err != nil {
		t.Errorf("second Clear() = %v, want nil", err)
	}
}

func TestSessionFileRepository_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	r := NewSessionFileRepository(dir)

	if err := os.WriteFile(r.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := r.Load(); err == nil {
		t.Error("Load() = nil error for corrupt file")
	}
}
