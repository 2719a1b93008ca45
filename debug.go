package chilly

import (
	"fmt"
	"log"
)

// globalDebug gates ambient warning logging across the whole module. It is
// package-level (not per-Database/per-render) because the pipeline has no
// single long-lived owner object the way a game scene does.
var globalDebug bool

// SetDebug enables or disables the [chilly]-prefixed logging that this
// package's logf helper writes to stderr. The database, parser, solidify
// and renderer packages do not log through it, so ingest and render emit
// no warnings either way. Disabled by default.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// Debug reports whether debug logging is currently enabled.
func Debug() bool {
	return globalDebug
}

// logf writes a [chilly]-prefixed message to stderr via the standard
// logger when debug mode is enabled. No-op otherwise.
func logf(format string, args ...any) {
	if !globalDebug {
		return
	}
	log.Print("[chilly] " + fmt.Sprintf(format, args...))
}
