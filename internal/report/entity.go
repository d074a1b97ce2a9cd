package report

import (
	"github.com/nerrad567/hass-sysmon/internal/hass"
	"github.com/nerrad567/hass-sysmon/internal/infrastructure/config"
	"github.com/nerrad567/hass-sysmon/internal/sensor"
)

// Entity is one monitored quantity bound to the device: a sensor kind,
// its sanitized entity ID, its display name, and the source that is
// sampled every cycle.
type Entity struct {
	Kind   sensor.Kind
	ID     string
	Name   string
	Source sensor.Source
}

// BuildEntities creates the entity set for the configured sensors.
//
// CPU usage and memory usage are always present. The temperature
// entity exists only when a sensor label is configured, and each
// configured network interface contributes a TX and an RX rate entity.
// Unconfigured kinds are never registered with Home Assistant.
func BuildEntities(sensors config.SensorsConfig) []Entity {
	entities := []Entity{
		{
			Kind:   sensor.KindCPUUsage,
			ID:     string(sensor.KindCPUUsage),
			Name:   sensor.KindCPUUsage.Meta().Name,
			Source: sensor.NewCPUUsage(),
		},
		{
			Kind:   sensor.KindMemoryUsage,
			ID:     string(sensor.KindMemoryUsage),
			Name:   sensor.KindMemoryUsage.Meta().Name,
			Source: sensor.NewMemoryUsage(),
		},
	}

	if sensors.Temperature != "" {
		entities = append(entities, Entity{
			Kind:   sensor.KindCPUTemp,
			ID:     string(sensor.KindCPUTemp),
			Name:   sensor.KindCPUTemp.Meta().Name,
			Source: sensor.NewTemperature(sensors.Temperature),
		})
	}

	for _, iface := range sensors.Network {
		ifaceID := hass.EntityID(iface)
		entities = append(entities,
			Entity{
				Kind:   sensor.KindNetTx,
				ID:     ifaceID + "_" + string(sensor.KindNetTx),
				Name:   iface + " " + sensor.KindNetTx.Meta().Name,
				Source: sensor.NewRate(sensor.NewTxCounter(iface)),
			},
			Entity{
				Kind:   sensor.KindNetRx,
				ID:     ifaceID + "_" + string(sensor.KindNetRx),
				Name:   iface + " " + sensor.KindNetRx.Meta().Name,
				Source: sensor.NewRate(sensor.NewRxCounter(iface)),
			},
		)
	}

	return entities
}
