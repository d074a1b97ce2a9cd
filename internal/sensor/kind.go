package sensor

// Kind identifies one monitored quantity. The set is closed; dispatch
// on Kind is always an exhaustive switch.
type Kind string

const (
	KindCPUTemp      Kind = "cpu_temp"
	KindCPUUsage     Kind = "cpu_usage"
	KindMemoryUsage  Kind = "memory_usage"
	KindNetTx        Kind = "net_tx"
	KindNetRx        Kind = "net_rx"
	KindAvailability Kind = "availability"
)

// Meta carries the Home Assistant presentation metadata of a kind.
type Meta struct {
	// Name is the default display name. Network entities prepend the
	// interface name to it.
	Name string

	// Unit is the unit_of_measurement, empty when HA defines none.
	Unit string

	// DeviceClass hints how HA interprets the value (e.g. temperature).
	DeviceClass string

	// StateClass is how HA stores the series; measurement for all
	// numeric kinds here.
	StateClass string

	// Icon overrides HA's default icon for kinds without a device class.
	Icon string
}

// Meta returns the presentation metadata for the kind.
func (k Kind) Meta() Meta {
	switch k {
	case KindCPUTemp:
		return Meta{
			Name:        "CPU temperature",
			Unit:        "°C",
			DeviceClass: "temperature",
			StateClass:  "measurement",
		}
	case KindCPUUsage:
		return Meta{
			Name:       "CPU usage",
			Unit:       "%",
			StateClass: "measurement",
			Icon:       "mdi:cpu-64-bit",
		}
	case KindMemoryUsage:
		return Meta{
			Name:       "Memory usage",
			Unit:       "%",
			StateClass: "measurement",
			Icon:       "mdi:memory",
		}
	case KindNetTx:
		return Meta{
			Name:        "network TX rate",
			Unit:        "KiB/s",
			DeviceClass: "data_rate",
			StateClass:  "measurement",
		}
	case KindNetRx:
		return Meta{
			Name:        "network RX rate",
			Unit:        "KiB/s",
			DeviceClass: "data_rate",
			StateClass:  "measurement",
		}
	case KindAvailability:
		return Meta{
			Name:        "Availability",
			DeviceClass: "connectivity",
		}
	default:
		return Meta{Name: string(k)}
	}
}
