package sensor

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MemoryUsage reads memory usage from /proc/meminfo.
type MemoryUsage struct {
	procRoot string
}

// NewMemoryUsage creates a memory usage source reading from /proc.
func NewMemoryUsage() *MemoryUsage {
	return &MemoryUsage{procRoot: "/proc"}
}

// Read returns the used-memory percentage (0-100), rounded to one
// decimal. Used memory is MemTotal - MemAvailable, the kernel's own
// estimate of reclaimable memory.
func (m *MemoryUsage) Read() (float64, error) {
	f, err := os.Open(filepath.Join(m.procRoot, "meminfo"))
	if err != nil {
		return 0, fmt.Errorf("reading memory stats: %w", err)
	}
	defer f.Close()

	var total, available uint64
	var haveTotal, haveAvailable bool

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Lines look like "MemTotal:       16314336 kB".
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, _ = strconv.ParseUint(fields[1], 10, 64)
			haveTotal = true
		case "MemAvailable:":
			available, _ = strconv.ParseUint(fields[1], 10, 64)
			haveAvailable = true
		}
		if haveTotal && haveAvailable {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading memory stats: %w", err)
	}
	if !haveTotal || !haveAvailable || total == 0 {
		return 0, fmt.Errorf("reading memory stats: MemTotal/MemAvailable not found in %s/meminfo", m.procRoot)
	}

	return round1(float64(total-available) / float64(total) * 100), nil
}
