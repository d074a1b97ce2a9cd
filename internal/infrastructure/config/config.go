package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for hass-sysmon.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	MQTT          MQTTConfig          `yaml:"mqtt"`
	HomeAssistant HomeAssistantConfig `yaml:"homeassistant"`
	Device        DeviceConfig        `yaml:"device"`
	Report        ReportConfig        `yaml:"report"`
	Sensors       SensorsConfig       `yaml:"sensors"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// HomeAssistantConfig contains Home Assistant discovery settings.
type HomeAssistantConfig struct {
	// DiscoveryPrefix is the topic prefix Home Assistant watches for
	// MQTT discovery messages. Default: "homeassistant".
	DiscoveryPrefix string `yaml:"discovery_prefix"`
}

// DeviceConfig identifies the monitored host as it appears in Home Assistant.
type DeviceConfig struct {
	// Name is the human-readable device name. Defaults to the hostname.
	Name string `yaml:"name"`
}

// ReportConfig contains the periodic reporting settings.
type ReportConfig struct {
	// Period is the sampling/publish interval in seconds.
	Period int `yaml:"period"`
}

// SensorsConfig selects which optional sensors are monitored.
//
// CPU usage and memory usage are always reported. Temperature and
// network sensors are only registered when configured here.
type SensorsConfig struct {
	// Temperature is the hwmon sensor label to report (e.g. "Package id 0").
	// Empty disables the CPU temperature sensor.
	Temperature string `yaml:"temperature"`

	// Network lists interface names to report throughput for
	// (e.g. [eth0]). Empty disables the network rate sensors.
	Network []string `yaml:"network"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file with environment overrides.
//
// Precedence (lowest to highest): defaults, YAML file, environment
// variables. Environment variables follow the pattern HASS_SYSMON_SECTION_KEY,
// for example: HASS_SYSMON_MQTT_HOST, HASS_SYSMON_MQTT_PASSWORD.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
// The device name defaults to the hostname, matching what most users
// want to see on the Home Assistant device page.
func defaultConfig() *Config {
	return &Config{
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "hass-sysmon",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		HomeAssistant: HomeAssistantConfig{
			DiscoveryPrefix: "homeassistant",
		},
		Device: DeviceConfig{
			Name: hostname(),
		},
		Report: ReportConfig{
			Period: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// hostname returns the machine hostname, or an empty string if it
// cannot be read. An empty device name fails validation, so the error
// surfaces at startup rather than being silently swallowed.
func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: HASS_SYSMON_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// MQTT
	if v := os.Getenv("HASS_SYSMON_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("HASS_SYSMON_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("HASS_SYSMON_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// Device
	if v := os.Getenv("HASS_SYSMON_DEVICE_NAME"); v != "" {
		cfg.Device.Name = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// MQTT validation
	if c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required")
	}
	if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	// Discovery validation
	if c.HomeAssistant.DiscoveryPrefix == "" {
		errs = append(errs, "homeassistant.discovery_prefix is required")
	}

	// Device validation. The sanitized form is checked again where the
	// device identity is built; this catches the common case early.
	if c.Device.Name == "" {
		errs = append(errs, "device.name is required (hostname could not be determined)")
	}

	// Report validation
	if c.Report.Period < 1 {
		errs = append(errs, "report.period must be at least 1 second")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetPeriod returns the report period as a Duration.
func (c *Config) GetPeriod() time.Duration {
	return time.Duration(c.Report.Period) * time.Second
}
