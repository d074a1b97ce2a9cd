// Package report implements the reporting engine of hass-sysmon.
//
// This package manages:
//   - Building the entity set from configuration (unconfigured sensor
//     kinds are never registered)
//   - The discovery registrar (retained config messages, one per entity
//     plus one for availability)
//   - The periodic report loop and its lifecycle state machine
//     (Starting → Running → Stopping → Stopped)
//   - Availability: "online" after registration completes, best-effort
//     "offline" on every shutdown path
//
// # Ordering Guarantees
//
// All discovery publishes happen before the first state publish; the
// online availability publish happens before any sensor state publish;
// the offline publish happens after the loop has stopped publishing
// states.
//
// # Concurrency
//
// The loop runs on a single goroutine. Shutdown is driven by context
// cancellation, observed during the inter-cycle wait so shutdown
// latency is bounded by the publish timeout, not the report period.
// Rate-sensor state is owned exclusively by the loop.
package report
