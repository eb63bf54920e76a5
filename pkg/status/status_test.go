package status

import (
	"strings"
	"testing"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindNone, "OK"},
		{KindInvalidOptions, "InvalidOptions"},
		{KindAlreadyInitialized, "AlreadyInitialized"},
		{KindNotInitialized, "NotInitialized"},
		{KindShutdownInProgress, "ShutdownInProgress"},
		{KindExceededTimeLimit, "ExceededTimeLimit"},
		{KindPermanentFailure, "PermanentFailure"},
		{ErrorKind(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestOK(t *testing.T) {
	st := OK()

	if !st.IsOK() {
		t.Error("OK().IsOK() = false, want true")
	}
	if st.Kind() != KindNone {
		t.Errorf("OK().Kind() = %v, want KindNone", st.Kind())
	}
	if st.Reason() != "" {
		t.Errorf("OK().Reason() = %q, want empty", st.Reason())
	}
	if st.Err() != nil {
		t.Errorf("OK().Err() = %v, want nil", st.Err())
	}
	if st.String() != "OK" {
		t.Errorf("OK().String() = %q, want OK", st.String())
	}
}

func TestZeroValueIsOK(t *testing.T) {
	var st Status

	if !st.IsOK() {
		t.Error("zero Status is not OK")
	}
}

func TestNew(t *testing.T) {
	st := New(KindNotInitialized, "shutdown before initialize")

	if st.IsOK() {
		t.Error("failed Status reports IsOK")
	}
	if st.Kind() != KindNotInitialized {
		t.Errorf("Kind() = %v, want KindNotInitialized", st.Kind())
	}
	if st.Reason() != "shutdown before initialize" {
		t.Errorf("Reason() = %q", st.Reason())
	}
	if st.Err() == nil {
		t.Error("Err() = nil for failed Status")
	}
}

func TestNew_KindNoneIsOK(t *testing.T) {
	st := New(KindNone, "ignored")

	if !st.IsOK() {
		t.Error("New(KindNone, ...) is not OK")
	}
	if st.Reason() != "" {
		t.Errorf("Reason() = %q, want empty", st.Reason())
	}
}

func TestErrf(t *testing.T) {
	st := Errf(KindExceededTimeLimit, "teardown exceeded %v", "5s")

	if st.Kind() != KindExceededTimeLimit {
		t.Errorf("Kind() = %v, want KindExceededTimeLimit", st.Kind())
	}
	if st.Reason() != "teardown exceeded 5s" {
		t.Errorf("Reason() = %q", st.Reason())
	}
}

func TestStatus_String(t *testing.T) {
	st := New(KindPermanentFailure, "driver teardown failed")

	got := st.String()
	if !strings.Contains(got, "PermanentFailure") || !strings.Contains(got, "driver teardown failed") {
		t.Errorf("String() = %q", got)
	}
}
