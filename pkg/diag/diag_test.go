package diag

import "testing"

func TestCaptureRecordsWarnings(t *testing.T) {
	msgs, restore := Capture()
	defer restore()

	Warn("first", "key", "val")
	Warnf("second %d", 2)

	if len(*msgs) != 2 {
		t.Fatalf("recorded %d messages, want 2", len(*msgs))
	}
	if (*msgs)[0] != "first" || (*msgs)[1] != "second 2" {
		t.Errorf("recorded %v", *msgs)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	called := false
	SetHandler(func(msg string, ctx ...any) { called = true })
	Warn("x")
	if !called {
		t.Fatal("custom handler not invoked")
	}
	SetHandler(nil)
	// Default handler goes to slog; just ensure no panic.
	Warn("y")
}
