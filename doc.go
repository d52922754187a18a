// Package cafeq provides a deterministic multi-queue round-robin service
// scheduler: named counters accept typed orders with fixed service costs and
// a dispatcher advances logical time by cyclically granting each queue a
// bounded quantum to progress its head order.
//
// The engine itself lives in the scheduler sub-package; this package exposes
// the high-level Service façade that hosts embed:
//
//	srv := cafeq.New()
//	ctx := context.Background()
//	srv.CreateQueue(ctx, "c1", 2)
//	srv.Enqueue(ctx, "c1", "latte")
//	logs := srv.Drain(ctx, 2)
//
// Every operation returns the ordered log lines it produced in a stable
// key=value grammar (see the logline sub-package for the parser). The façade
// additionally archives per-operation transcripts, publishes typed events to
// subscribed listeners and can wrap operations in OpenTelemetry spans.
package cafeq
