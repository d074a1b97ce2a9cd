package sensor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// NetCounter reads one byte counter of a network interface from
// /sys/class/net/<interface>/statistics.
type NetCounter struct {
	sysRoot   string
	iface     string
	statsFile string
}

// NewTxCounter creates a counter source for bytes transmitted on the
// interface.
func NewTxCounter(iface string) *NetCounter {
	return &NetCounter{sysRoot: "/sys", iface: iface, statsFile: "tx_bytes"}
}

// NewRxCounter creates a counter source for bytes received on the
// interface.
func NewRxCounter(iface string) *NetCounter {
	return &NetCounter{sysRoot: "/sys", iface: iface, statsFile: "rx_bytes"}
}

// ReadCounter returns the current absolute byte count. The counter is
// monotonic except across interface resets, which the rate sensor
// handles.
func (n *NetCounter) ReadCounter() (uint64, error) {
	path := filepath.Join(n.sysRoot, "class", "net", n.iface, "statistics", n.statsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s counter for %s: %w", n.statsFile, n.iface, err)
	}

	value, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reading %s counter for %s: %w", n.statsFile, n.iface, err)
	}
	return value, nil
}
