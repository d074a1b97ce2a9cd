package sensor

import "math"

// Source produces one numeric sample on demand.
//
// Implementations read the OS on every call; they do not cache beyond
// what the metric itself requires (the CPU usage source keeps previous
// jiffy counters to compute a delta).
type Source interface {
	// Read returns the current value. The meaning and range depend on
	// the sensor kind (percent, degrees Celsius).
	Read() (float64, error)
}

// CounterSource produces a monotonically increasing counter reading,
// such as total bytes transmitted on an interface. A decreasing
// reading means the counter was reset.
type CounterSource interface {
	ReadCounter() (uint64, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (float64, error)

// Read calls f.
func (f SourceFunc) Read() (float64, error) { return f() }

// round1 rounds to one decimal place, the precision published for
// percentage and temperature values.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
