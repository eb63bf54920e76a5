package cliconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	logadapter "github.com/bft-labs/corelink/internal/adapters/log"
)

func TestWatcher_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("node_id = \"a\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(path, logadapter.NewNoopLogger())
	w.debounce = 20 * time.Millisecond

	changed := make(chan string, 1)
	w.onChange = func(p string) {
		select {
		case changed <- p:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("node_id = \"b\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		if p != path {
			t.Errorf("onChange path = %q, want %q", p, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(path, logadapter.NewNoopLogger())
	w.debounce = 20 * time.Millisecond

	changed := make(chan string, 1)
	w.onChange = func(p string) { changed <- p }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		t.Fatalf("unexpected change notification for %q", p)
	case <-time.After(300 * time.Millisecond):
	}
}
