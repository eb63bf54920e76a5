package http

import (
	"testing"
	"time"
)

func TestBackoff_DoublesUpToMax(t *testing.T) {
	b := newBackoff(time.Millisecond, 4*time.Millisecond)

	if got := b.Current(); got != time.Millisecond {
		t.Errorf("Current() = %v, want 1ms", got)
	}
	b.Sleep()
	if got := b.Current(); got != 2*time.Millisecond {
		t.Errorf("Current() after one sleep = %v, want 2ms", got)
	}
	b.Sleep()
	b.Sleep()
	if got := b.Current(); got != 4*time.Millisecond {
		t.Errorf("Current() = %v, want capped at 4ms", got)
	}
}

func TestBackoff_Reset(t *testing.T) {
	b := newBackoff(time.Millisecond, 8*time.Millisecond)
	b.Sleep()
	b.Sleep()
	b.Reset()
	if got := b.Current(); got != time.Millisecond {
		t.Errorf("Current() after Reset = %v, want 1ms", got)
	}
}
