// Package diag is the single warning channel for the runtime core. Every
// usage diagnostic flows through here; none of them alter control flow.
package diag

import (
	"fmt"
	"log/slog"
	"sync"
)

// Handler receives a formatted warning and optional structured context.
type Handler func(msg string, ctx ...any)

var (
	mu      sync.RWMutex
	handler Handler
)

// SetHandler replaces the warning sink. Pass nil to restore the default
// slog-backed handler.
func SetHandler(h Handler) {
	mu.Lock()
	handler = h
	mu.Unlock()
}

// Warn emits a warning with optional slog-style key/value context.
func Warn(msg string, ctx ...any) {
	mu.RLock()
	h := handler
	mu.RUnlock()
	if h != nil {
		h(msg, ctx...)
		return
	}
	slog.Default().Warn(msg, ctx...)
}

// Warnf emits a printf-formatted warning.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}

// Capture installs a recording handler and returns the recorded messages
// slice plus a restore function. Intended for tests.
func Capture() (*[]string, func()) {
	var msgs []string
	SetHandler(func(msg string, ctx ...any) {
		msgs = append(msgs, msg)
	})
	return &msgs, func() { SetHandler(nil) }
}
