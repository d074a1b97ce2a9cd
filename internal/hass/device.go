package hass

import (
	"errors"
	"fmt"
)

// ErrEmptyDeviceID is returned when a device name sanitizes to nothing.
var ErrEmptyDeviceID = errors.New("hass: device name contains no usable characters")

// Device is the identity of the monitored host as Home Assistant sees it.
//
// Name is the human-entered display name (e.g. a hostname with spaces
// and mixed case); ID is its sanitized form, stable for a given name.
// A Device is created once at startup and never mutated.
type Device struct {
	Name string
	ID   string
}

// NewDevice derives a Device from its display name.
//
// Returns ErrEmptyDeviceID if the sanitized name is empty, which is a
// configuration error the caller must treat as fatal.
func NewDevice(name string) (Device, error) {
	id := EntityID(name)
	if id == "" {
		return Device{}, fmt.Errorf("%w: %q", ErrEmptyDeviceID, name)
	}
	return Device{Name: name, ID: id}, nil
}
