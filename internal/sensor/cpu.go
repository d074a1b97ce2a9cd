package sensor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CPUUsage reads global CPU usage from /proc/stat.
//
// Usage is computed from the delta of jiffy counters between two
// successive reads, so the first read reports 0. State is owned by the
// report loop; a CPUUsage must not be shared between goroutines.
type CPUUsage struct {
	procRoot string

	prevBusy uint64
	prevIdle uint64
	primed   bool
}

// NewCPUUsage creates a CPU usage source reading from /proc.
func NewCPUUsage() *CPUUsage {
	return &CPUUsage{procRoot: "/proc"}
}

// Read returns the CPU usage percentage (0-100) since the previous
// call, rounded to one decimal. The first call primes the counters and
// returns 0.
func (c *CPUUsage) Read() (float64, error) {
	busy, idle, err := c.readCounters()
	if err != nil {
		return 0, err
	}

	prevBusy, prevIdle, primed := c.prevBusy, c.prevIdle, c.primed
	c.prevBusy, c.prevIdle, c.primed = busy, idle, true

	if !primed {
		return 0, nil
	}

	total := (busy - prevBusy) + (idle - prevIdle)
	if total == 0 || busy < prevBusy || idle < prevIdle {
		return 0, nil
	}
	return round1(float64(busy-prevBusy) / float64(total) * 100), nil
}

// readCounters parses the aggregate "cpu" line of /proc/stat into busy
// (user+nice+system) and idle (idle+iowait) jiffies.
func (c *CPUUsage) readCounters() (busy, idle uint64, err error) {
	f, err := os.Open(filepath.Join(c.procRoot, "stat"))
	if err != nil {
		return 0, 0, fmt.Errorf("reading cpu stats: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return 0, 0, fmt.Errorf("reading cpu stats: empty %s/stat", c.procRoot)
	}

	// First line: "cpu  user nice system idle iowait irq softirq steal ..."
	fields := strings.Fields(scanner.Text())
	if len(fields) < 5 || fields[0] != "cpu" {
		return 0, 0, fmt.Errorf("reading cpu stats: unexpected line %q", scanner.Text())
	}

	user, _ := strconv.ParseUint(fields[1], 10, 64)
	nice, _ := strconv.ParseUint(fields[2], 10, 64)
	system, _ := strconv.ParseUint(fields[3], 10, 64)
	idleJiffies, _ := strconv.ParseUint(fields[4], 10, 64)
	var iowait uint64
	if len(fields) > 5 {
		iowait, _ = strconv.ParseUint(fields[5], 10, 64)
	}

	return user + nice + system, idleJiffies + iowait, nil
}
