// hass-sysmon - Home Assistant system monitor
//
// A small daemon that samples host metrics (CPU, memory, temperature,
// network throughput) and publishes them to Home Assistant over MQTT
// using the discovery protocol. Entities appear automatically; no
// Home Assistant configuration is required beyond a running broker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/hass-sysmon/internal/hass"
	"github.com/nerrad567/hass-sysmon/internal/infrastructure/config"
	"github.com/nerrad567/hass-sysmon/internal/infrastructure/logging"
	"github.com/nerrad567/hass-sysmon/internal/infrastructure/mqtt"
	"github.com/nerrad567/hass-sysmon/internal/report"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Once shutdown begins, restore default signal handling so a
	// second signal terminates immediately instead of waiting for
	// the farewell publish.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting hass-sysmon",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Resolve the device identity; every topic and unique_id derives
	// from the sanitised device name.
	device, err := hass.NewDevice(cfg.Device.Name)
	if err != nil {
		return fmt.Errorf("resolving device identity: %w", err)
	}
	log.Info("device identity resolved", "name", device.Name, "id", device.ID)

	// Build the entity set from the configured sensors
	entities := report.BuildEntities(cfg.Sensors)
	log.Info("entities configured", "count", len(entities))

	// Connect to the MQTT broker. The will mirrors the offline
	// farewell: if the process dies without publishing it, the broker
	// marks the device offline on our behalf.
	topics := hass.Topics{Prefix: cfg.HomeAssistant.DiscoveryPrefix}
	client, err := mqtt.Connect(cfg.MQTT, mqtt.Will{
		Topic:   topics.AvailabilityState(device.ID),
		Payload: hass.PayloadOffline,
	})
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := client.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	daemon := report.New(cfg, device, entities, client, log, version)

	// On reconnect the broker may have dropped retained state (or a
	// restarted Home Assistant may have missed discovery), so
	// re-register and come back online.
	client.SetOnConnect(func() {
		log.Info("MQTT reconnected, re-registering entities")
		daemon.Register()
		daemon.Online()
	})
	client.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Run until the context is cancelled; Run publishes the offline
	// farewell before returning.
	if err := daemon.Run(ctx); err != nil {
		return fmt.Errorf("report loop: %w", err)
	}

	log.Info("hass-sysmon stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses the first argument if given, then the HASS_SYSMON_CONFIG
// environment variable, otherwise the default.
func getConfigPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	if path := os.Getenv("HASS_SYSMON_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
