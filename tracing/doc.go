// Package tracing provides a thin wrapper around OpenTelemetry so the rest
// of the code-base can start and end spans without depending on the upstream
// packages directly. Initialisation is opt-in; until Init or InitWithExporter
// is called all spans are no-ops.
package tracing
