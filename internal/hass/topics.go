package hass

import "fmt"

// DefaultDiscoveryPrefix is the topic prefix Home Assistant watches by default.
const DefaultDiscoveryPrefix = "homeassistant"

// AvailabilityEntity is the fixed entity ID of the availability binary sensor.
const AvailabilityEntity = "availability"

// Availability payloads published to the availability state topic.
const (
	PayloadOnline  = "online"
	PayloadOffline = "offline"
)

// Topics builds the MQTT topics for one discovery prefix.
// Using these helpers keeps topic naming consistent across the codebase.
//
//	topics := hass.Topics{Prefix: cfg.HomeAssistant.DiscoveryPrefix}
//	topics.SensorState("living_room_pc", "cpu_usage")
//	// Returns: "homeassistant/sensor/living_room_pc/cpu_usage/state"
type Topics struct {
	Prefix string
}

// SensorDiscovery returns the retained discovery config topic for a sensor.
//
// Example: homeassistant/sensor/living_room_pc/cpu_usage/config
func (t Topics) SensorDiscovery(deviceID, entityID string) string {
	return fmt.Sprintf("%s/sensor/%s/%s/config", t.Prefix, deviceID, entityID)
}

// SensorState returns the state topic for a sensor.
//
// Example: homeassistant/sensor/living_room_pc/cpu_usage/state
func (t Topics) SensorState(deviceID, entityID string) string {
	return fmt.Sprintf("%s/sensor/%s/%s/state", t.Prefix, deviceID, entityID)
}

// AvailabilityDiscovery returns the discovery config topic for the
// availability binary sensor.
//
// Example: homeassistant/binary_sensor/living_room_pc/availability/config
func (t Topics) AvailabilityDiscovery(deviceID string) string {
	return fmt.Sprintf("%s/binary_sensor/%s/%s/config", t.Prefix, deviceID, AvailabilityEntity)
}

// AvailabilityState returns the availability state topic. Every sensor
// of the device references this topic so Home Assistant can mark them
// all unavailable together.
//
// Example: homeassistant/binary_sensor/living_room_pc/availability/state
func (t Topics) AvailabilityState(deviceID string) string {
	return fmt.Sprintf("%s/binary_sensor/%s/%s/state", t.Prefix, deviceID, AvailabilityEntity)
}
