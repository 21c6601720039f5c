// Package logging provides debug logging utilities for the codepage tools.
package logging

import (
	"log"
	"os"
	"sync/atomic"
)

// debugEnabled controls whether Debug() produces output. It is set from the
// -debug flag, DEBUG=1 or a config reload, possibly while other goroutines
// are logging.
var debugEnabled atomic.Bool

// maxDebugBytes caps how much of a buffer DebugBytes prints.
const maxDebugBytes = 64

// SetDebug turns debug output on or off.
func SetDebug(on bool) { debugEnabled.Store(on) }

// Enabled reports whether debug output is on.
func Enabled() bool { return debugEnabled.Load() }

// Debug logs a message only when debug output is on.
func Debug(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("DEBUG: "+format, args...)
	}
}

// DebugBytes logs p as hex under label when debug output is on. Long
// buffers are truncated.
func DebugBytes(label string, p []byte) {
	if !debugEnabled.Load() {
		return
	}
	if len(p) > maxDebugBytes {
		log.Printf("DEBUG: %s (%d bytes): % X ...", label, len(p), p[:maxDebugBytes])
		return
	}
	log.Printf("DEBUG: %s (%d bytes): % X", label, len(p), p)
}

// EnableFromEnv turns on debug output when DEBUG=1 is set.
func EnableFromEnv() {
	if os.Getenv("DEBUG") == "1" {
		SetDebug(true)
	}
}
