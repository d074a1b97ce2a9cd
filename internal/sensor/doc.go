// Package sensor provides the metric sources sampled by the report loop.
//
// This package manages:
//   - The closed set of sensor kinds and their Home Assistant metadata
//   - OS providers reading /proc and /sys (CPU, memory, temperature,
//     network byte counters)
//   - The rate sensor converting monotonic counters into KiB/s
//
// Providers are fallible by design; a read error skips that sensor for
// one report cycle and nothing else.
package sensor
