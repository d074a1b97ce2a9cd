package hass

import "strings"

// EntityID converts an arbitrary human-readable name into a stable
// identifier usable in MQTT topics and Home Assistant unique IDs.
//
// The output contains only lowercase ASCII letters, digits, and
// underscores. Runs of any other characters collapse to a single
// underscore; leading and trailing underscores are trimmed. The
// function is pure and idempotent.
//
// An empty result (input with no usable characters) is legal here;
// callers treat it as a configuration error.
//
// Example:
//
//	EntityID("Living Room PC") // "living_room_pc"
func EntityID(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingSep := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			// Whitespace, punctuation, and non-ASCII all act as
			// separators. Leading separators never emit.
			pendingSep = true
		}
	}

	return b.String()
}
