// Package clock isolates wall-clock access so tests can pin timestamps.
// Logical scheduler time is a plain integer owned by the scheduler and never
// touches this package.
package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
