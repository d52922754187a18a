// Package idgen wraps the UUID generator so that it can be stubbed in tests.
// Identifiers produced here label runs and advisory messages; they are opaque
// strings and carry no ordering guarantees. Task identifiers are NOT produced
// here – those are deterministic per-queue counters owned by the scheduler.
package idgen
