package monitoring

import "log"

// Logf receives the engine's diagnostic lines: session start/stop, reseeds,
// ignored steps and worker errors. It writes through the standard logger
// unless replaced.
var Logf = log.Printf

// SetLogger routes diagnostics to f. A nil f discards them, which is what the
// tests and the bench's quiet runs want.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		f = func(string, ...any) {}
	}
	Logf = f
}
