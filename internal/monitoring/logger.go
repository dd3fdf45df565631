// Package monitoring provides the package-level diagnostic logger shared by
// the telemetry and generation packages.
package monitoring

import "log"

// Logf is the diagnostic logger used across the module. It defaults to
// log.Printf; tests and embedders can redirect or mute it via SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// Warnf logs a recoverable condition, such as a skipped telemetry sample.
// Warnings never abort a run; they exist so a dropped trackpoint leaves a
// trace instead of vanishing silently.
func Warnf(format string, v ...interface{}) {
	Logf("warning: "+format, v...)
}

// SetLogger replaces the module logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
