package history

import (
	"strings"
	"testing"
)

func TestWindow_Empty(t *testing.T) {
	h := New()
	if got := h.Window(10); got != "" {
		t.Fatalf("Window on empty history = %q, want empty", got)
	}
}

func TestWindow_Format(t *testing.T) {
	h := New()
	h.Append(RoleUser, "quiz me on Go")
	h.Append(RoleAssistant, "Starting a quiz!")

	want := "user: quiz me on Go\nassistant: Starting a quiz!"
	if got := h.Window(10); got != want {
		t.Fatalf("Window = %q, want %q", got, want)
	}
}

func TestWindow_BoundsToLastN(t *testing.T) {
	h := New()
	for i := 0; i < 15; i++ {
		h.Append(RoleUser, "message")
	}

	got := h.Window(0) // default window
	if n := len(strings.Split(got, "\n")); n != DefaultWindow {
		t.Fatalf("default window rendered %d lines, want %d", n, DefaultWindow)
	}

	got = h.Window(3)
	if n := len(strings.Split(got, "\n")); n != 3 {
		t.Fatalf("Window(3) rendered %d lines, want 3", n)
	}
}

func TestWindow_NoContentTruncation(t *testing.T) {
	h := New()
	long := strings.Repeat("x", 5000)
	h.Append(RoleUser, long)

	if got := h.Window(1); got != "user: "+long {
		t.Fatal("entry content must not be truncated")
	}
}

func TestAppend_Timestamps(t *testing.T) {
	h := New()
	h.Append(RoleUser, "hello")

	entries := h.Entries()
	if len(entries) != 1 {
		t.Fatalf("Len = %d, want 1", len(entries))
	}
	if entries[0].Timestamp.IsZero() {
		t.Fatal("Append must timestamp entries")
	}
}
