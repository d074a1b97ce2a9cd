package sensor

import (
	"math"
	"time"
)

// Rate converts successive readings of a monotonic byte counter into a
// KiB/s throughput value.
//
// The first-ever sample has no baseline and reports 0 so the entity is
// never unknown between discovery and the second cycle. A decreasing
// counter is treated as a reset: the new value becomes the baseline
// and the cycle reports 0 rather than a negative or absurd rate.
//
// State (last value, last timestamp) is owned exclusively by the
// report loop; a Rate must not be shared between goroutines.
type Rate struct {
	counter CounterSource

	lastValue uint64
	lastTime  time.Time
	primed    bool

	// now is replaceable for tests.
	now func() time.Time
}

// NewRate wraps a counter source into a rate sensor.
func NewRate(counter CounterSource) *Rate {
	return &Rate{
		counter: counter,
		now:     time.Now,
	}
}

// Read samples the counter and returns the rate in KiB/s since the
// previous sample, rounded to two decimals. The stored baseline is
// updated unconditionally, including on resets.
func (r *Rate) Read() (float64, error) {
	value, err := r.counter.ReadCounter()
	if err != nil {
		return 0, err
	}
	sampledAt := r.now()

	lastValue, lastTime, primed := r.lastValue, r.lastTime, r.primed
	r.lastValue, r.lastTime, r.primed = value, sampledAt, true

	if !primed || value < lastValue {
		return 0, nil
	}

	elapsed := sampledAt.Sub(lastTime).Seconds()
	if elapsed <= 0 {
		return 0, nil
	}

	rate := float64(value-lastValue) / elapsed / 1024
	return math.Round(rate*100) / 100, nil
}
