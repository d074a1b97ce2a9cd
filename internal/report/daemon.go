package report

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/nerrad567/hass-sysmon/internal/hass"
	"github.com/nerrad567/hass-sysmon/internal/infrastructure/config"
	"github.com/nerrad567/hass-sysmon/internal/infrastructure/logging"
)

// Publisher is the MQTT transport consumed by the daemon. The concrete
// implementation (internal/infrastructure/mqtt.Client) handles framing
// and reconnection; a publish error here never terminates the loop.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Daemon is the reporting engine: it registers the device's entities
// with Home Assistant, announces availability, and publishes sensor
// states every period until its context is cancelled.
type Daemon struct {
	device   hass.Device
	info     hass.DeviceInfo
	origin   hass.Origin
	topics   hass.Topics
	entities []Entity
	pub      Publisher
	log      *logging.Logger

	period time.Duration
	qos    byte

	state atomic.Int32
}

// New creates a Daemon for the given device and entity set.
//
// Parameters:
//   - cfg: Resolved configuration (period, QoS, discovery prefix)
//   - device: Device identity (display name + sanitized ID)
//   - entities: Entity set from BuildEntities (or a custom set in tests)
//   - pub: MQTT transport
//   - log: Logger
//   - version: Software version reported in the discovery origin block
func New(cfg *config.Config, device hass.Device, entities []Entity, pub Publisher, log *logging.Logger, version string) *Daemon {
	return &Daemon{
		device: device,
		info:   hass.NewDeviceInfo(device),
		origin: hass.Origin{
			Name:      "hass-sysmon",
			SWVersion: version,
			URL:       "https://github.com/nerrad567/hass-sysmon",
		},
		topics:   hass.Topics{Prefix: cfg.HomeAssistant.DiscoveryPrefix},
		entities: entities,
		pub:      pub,
		log:      log.With("component", "report"),
		period:   cfg.GetPeriod(),
		qos:      byte(cfg.MQTT.QoS),
	}
}

// State returns the current lifecycle state.
func (d *Daemon) State() State {
	return State(d.state.Load())
}

func (d *Daemon) setState(s State) {
	d.state.Store(int32(s))
	d.log.Debug("state transition", "state", s.String())
}

// Run executes the report loop until ctx is cancelled.
//
// Ordering: all discovery registrations are published first, then the
// retained online availability message, then sensor states every
// period. On cancellation the loop publishes offline (best effort,
// bounded by the transport's publish timeout) before returning.
//
// Run always returns nil on a signal-driven shutdown; sensor and
// publish failures are logged and survived, leaning on the transport's
// auto-reconnect for recovery.
func (d *Daemon) Run(ctx context.Context) error {
	d.setState(StateStarting)

	d.Register()
	d.publishAvailability(hass.PayloadOnline)

	d.setState(StateRunning)
	d.log.Info("report loop started",
		"device", d.device.Name,
		"entities", len(d.entities),
		"period", d.period.String(),
	)

	// First cycle immediately; the ticker covers the rest.
	d.reportCycle()

	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.shutdown()
			return nil
		case <-ticker.C:
			d.reportCycle()
		}
	}
}

// Register publishes one retained discovery config per entity plus one
// for the availability binary sensor. It is called once at startup
// and again on every broker reconnect (wired via the MQTT client's
// OnConnect callback) so a restarted broker re-learns the device.
//
// Failed registrations are logged and skipped; the next reconnect
// retries them.
func (d *Daemon) Register() {
	for _, e := range d.entities {
		topic := d.topics.SensorDiscovery(d.device.ID, e.ID)
		d.publishDiscovery(topic, d.discoveryConfig(e), e.ID)
	}

	// Availability is registered like any other entity so Home
	// Assistant shows connectivity on the device page.
	d.publishDiscovery(
		d.topics.AvailabilityDiscovery(d.device.ID),
		d.availabilityConfig(),
		hass.AvailabilityEntity,
	)
}

// publishDiscovery marshals and publishes one retained config message.
func (d *Daemon) publishDiscovery(topic string, cfg hass.SensorConfig, entityID string) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		d.log.Error("marshalling discovery payload", "entity", entityID, "error", err)
		return
	}

	if err := d.pub.Publish(topic, payload, d.qos, true); err != nil {
		d.log.Warn("discovery publish failed", "entity", entityID, "topic", topic, "error", err)
		return
	}
	d.log.Debug("discovery published", "entity", entityID, "topic", topic)
}

// discoveryConfig builds the discovery payload for one sensor entity.
func (d *Daemon) discoveryConfig(e Entity) hass.SensorConfig {
	meta := e.Kind.Meta()
	return hass.SensorConfig{
		Name:              e.Name,
		UniqueID:          d.device.ID + "_" + e.ID,
		StateTopic:        d.topics.SensorState(d.device.ID, e.ID),
		AvailabilityTopic: d.topics.AvailabilityState(d.device.ID),
		Device:            d.info,
		Origin:            d.origin,
		DeviceClass:       meta.DeviceClass,
		StateClass:        meta.StateClass,
		UnitOfMeasurement: meta.Unit,
		Icon:              meta.Icon,
		ExpireAfter:       d.expireAfter(),
	}
}

// availabilityConfig builds the discovery payload for the availability
// binary sensor. Its own state topic doubles as the availability topic
// every sensor entity references.
func (d *Daemon) availabilityConfig() hass.SensorConfig {
	return hass.SensorConfig{
		Name:        "Availability",
		UniqueID:    d.device.ID + "_" + hass.AvailabilityEntity,
		StateTopic:  d.topics.AvailabilityState(d.device.ID),
		Device:      d.info,
		Origin:      d.origin,
		DeviceClass: "connectivity",
		PayloadOn:   hass.PayloadOnline,
		PayloadOff:  hass.PayloadOffline,
	}
}

// expireAfter is how long Home Assistant keeps a state before marking
// the entity unknown: six missed cycles (60s at the default period).
func (d *Daemon) expireAfter() int {
	return int(d.period.Seconds()) * 6
}

// reportCycle samples every entity and publishes its state.
//
// A failed sensor read skips that entity for this cycle only; a failed
// publish is logged and the cycle continues. Neither aborts the loop.
func (d *Daemon) reportCycle() {
	for _, e := range d.entities {
		value, err := e.Source.Read()
		if err != nil {
			d.log.Warn("sensor read failed", "entity", e.ID, "error", err)
			continue
		}

		payload := strconv.FormatFloat(value, 'f', -1, 64)
		topic := d.topics.SensorState(d.device.ID, e.ID)
		if err := d.pub.Publish(topic, []byte(payload), d.qos, false); err != nil {
			d.log.Warn("state publish failed", "entity", e.ID, "error", err)
			continue
		}
		d.log.Debug("state published", "entity", e.ID, "value", payload)
	}
}

// Online marks the device available again. Called after a reconnect,
// where the broker will have published the offline will on our behalf.
func (d *Daemon) Online() {
	d.publishAvailability(hass.PayloadOnline)
}

// publishAvailability publishes the retained availability state.
func (d *Daemon) publishAvailability(status string) {
	topic := d.topics.AvailabilityState(d.device.ID)
	if err := d.pub.Publish(topic, []byte(status), d.qos, true); err != nil {
		d.log.Warn("availability publish failed", "status", status, "error", err)
		return
	}
	d.log.Info("availability published", "status", status)
}

// shutdown performs the Stopping transition: a single best-effort
// offline publish, bounded by the transport's publish timeout. A
// failure is logged; the process still exits.
func (d *Daemon) shutdown() {
	d.setState(StateStopping)
	d.log.Info("shutting down report loop")
	d.publishAvailability(hass.PayloadOffline)
	d.setState(StateStopped)
}
