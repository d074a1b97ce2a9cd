package sensor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Temperature reads one hwmon temperature channel selected by label.
//
// The label is matched against each channel's tempN_label file and,
// as a fallback, against the chip's name file (some drivers expose a
// single unlabelled channel).
type Temperature struct {
	sysRoot string
	label   string
}

// NewTemperature creates a temperature source for the given hwmon
// label (e.g. "Package id 0" or "coretemp").
func NewTemperature(label string) *Temperature {
	return &Temperature{sysRoot: "/sys", label: label}
}

// Read returns the temperature in degrees Celsius, rounded to one
// decimal. It returns an error if no hwmon channel matches the label.
func (t *Temperature) Read() (float64, error) {
	hwmonDir := filepath.Join(t.sysRoot, "class", "hwmon")
	chips, err := os.ReadDir(hwmonDir)
	if err != nil {
		return 0, fmt.Errorf("reading temperature: %w", err)
	}

	for _, chip := range chips {
		chipDir := filepath.Join(hwmonDir, chip.Name())

		if input, ok := t.matchChannel(chipDir); ok {
			return readMilliDegrees(input)
		}

		// Fallback: chip name matches and the chip has a first channel.
		if readTrimmed(filepath.Join(chipDir, "name")) == t.label {
			input := filepath.Join(chipDir, "temp1_input")
			if _, err := os.Stat(input); err == nil {
				return readMilliDegrees(input)
			}
		}
	}

	return 0, fmt.Errorf("reading temperature: no hwmon sensor labelled %q", t.label)
}

// matchChannel looks for a tempN_label file equal to the configured
// label and returns the path of the corresponding tempN_input.
func (t *Temperature) matchChannel(chipDir string) (string, bool) {
	labels, err := filepath.Glob(filepath.Join(chipDir, "temp*_label"))
	if err != nil {
		return "", false
	}
	for _, labelFile := range labels {
		if readTrimmed(labelFile) != t.label {
			continue
		}
		input := strings.TrimSuffix(labelFile, "_label") + "_input"
		return input, true
	}
	return "", false
}

// readMilliDegrees reads a hwmon temp input file (millidegrees Celsius).
func readMilliDegrees(path string) (float64, error) {
	raw := readTrimmed(path)
	milli, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reading temperature: parsing %s: %w", path, err)
	}
	return round1(float64(milli) / 1000), nil
}

// readTrimmed returns the trimmed content of a sysfs file, or an empty
// string if it cannot be read.
func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
