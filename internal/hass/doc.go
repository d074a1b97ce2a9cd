// Package hass implements the Home Assistant MQTT-discovery conventions
// used by hass-sysmon.
//
// This package manages:
//   - Entity-ID sanitization (stable lowercase snake_case identifiers)
//   - Discovery payload structures (retained JSON config messages)
//   - Topic construction for discovery, state, and availability
//
// Everything here is pure data and string manipulation; publishing is
// the report package's concern.
//
// See https://www.home-assistant.io/integrations/mqtt/ for the
// discovery message format.
package hass
