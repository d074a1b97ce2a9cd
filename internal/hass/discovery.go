package hass

// DeviceInfo holds the Home Assistant device registry fields shared
// across all MQTT discovery config payloads. Every entity published
// for a host references the same device block so HA groups them under
// a single device page.
type DeviceInfo struct {
	Identifiers []string `json:"identifiers"`
	Name        string   `json:"name"`
}

// Origin describes the software publishing the discovery messages.
type Origin struct {
	Name      string `json:"name"`
	SWVersion string `json:"sw_version,omitempty"`
	URL       string `json:"url,omitempty"`
}

// SensorConfig is the JSON payload for a Home Assistant MQTT discovery
// message, for both sensor and binary_sensor entities. It is published
// retained to the entity's discovery topic before any state update so
// the entity exists by the time the first state arrives.
type SensorConfig struct {
	Name              string     `json:"name"`
	UniqueID          string     `json:"unique_id"`
	StateTopic        string     `json:"state_topic"`
	AvailabilityTopic string     `json:"availability_topic,omitempty"`
	Device            DeviceInfo `json:"device"`
	Origin            Origin     `json:"origin"`
	DeviceClass       string     `json:"device_class,omitempty"`
	StateClass        string     `json:"state_class,omitempty"`
	UnitOfMeasurement string     `json:"unit_of_measurement,omitempty"`
	Icon              string     `json:"icon,omitempty"`
	ExpireAfter       int        `json:"expire_after,omitempty"`

	// PayloadOn/PayloadOff are only set on the availability binary
	// sensor so its state topic carries "online"/"offline" instead of
	// the default ON/OFF.
	PayloadOn  string `json:"payload_on,omitempty"`
	PayloadOff string `json:"payload_off,omitempty"`
}

// NewDeviceInfo creates the shared device block for discovery payloads.
func NewDeviceInfo(d Device) DeviceInfo {
	return DeviceInfo{
		Identifiers: []string{d.ID},
		Name:        d.Name,
	}
}
