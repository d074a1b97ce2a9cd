package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
mqtt:
  broker:
    host: "broker.local"
    port: 8883
    tls: true
    client_id: "test-client"
  auth:
    username: "monitor"
  qos: 1
device:
  name: "Living Room PC"
report:
  period: 30
sensors:
  temperature: "Package id 0"
  network: [eth0, wlan0]
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "broker.local" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "broker.local")
	}
	if !cfg.MQTT.Broker.TLS {
		t.Error("MQTT.Broker.TLS = false, want true")
	}
	if cfg.Device.Name != "Living Room PC" {
		t.Errorf("Device.Name = %q, want %q", cfg.Device.Name, "Living Room PC")
	}
	if cfg.Sensors.Temperature != "Package id 0" {
		t.Errorf("Sensors.Temperature = %q, want %q", cfg.Sensors.Temperature, "Package id 0")
	}
	if len(cfg.Sensors.Network) != 2 || cfg.Sensors.Network[0] != "eth0" {
		t.Errorf("Sensors.Network = %v, want [eth0 wlan0]", cfg.Sensors.Network)
	}
	if got := cfg.GetPeriod(); got != 30*time.Second {
		t.Errorf("GetPeriod() = %v, want 30s", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Empty file: everything comes from defaults.
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "localhost" {
		t.Errorf("MQTT.Broker.Host = %q, want %q", cfg.MQTT.Broker.Host, "localhost")
	}
	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("MQTT.Broker.Port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.HomeAssistant.DiscoveryPrefix != "homeassistant" {
		t.Errorf("DiscoveryPrefix = %q, want %q", cfg.HomeAssistant.DiscoveryPrefix, "homeassistant")
	}
	if cfg.Report.Period != 10 {
		t.Errorf("Report.Period = %d, want 10", cfg.Report.Period)
	}

	// By default the device name is the hostname of the machine.
	host, err := os.Hostname()
	if err != nil {
		t.Skipf("cannot read hostname: %v", err)
	}
	if cfg.Device.Name != host {
		t.Errorf("Device.Name = %q, want hostname %q", cfg.Device.Name, host)
	}

	// Optional sensors are off by default.
	if cfg.Sensors.Temperature != "" {
		t.Errorf("Sensors.Temperature = %q, want empty", cfg.Sensors.Temperature)
	}
	if len(cfg.Sensors.Network) != 0 {
		t.Errorf("Sensors.Network = %v, want empty", cfg.Sensors.Network)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HASS_SYSMON_MQTT_HOST", "override.local")
	t.Setenv("HASS_SYSMON_MQTT_USERNAME", "env-user")
	t.Setenv("HASS_SYSMON_MQTT_PASSWORD", "env-pass")
	t.Setenv("HASS_SYSMON_DEVICE_NAME", "Env Device")

	cfg, err := Load(writeConfig(t, "mqtt:\n  broker:\n    host: file.local\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "override.local" {
		t.Errorf("MQTT.Broker.Host = %q, want env override", cfg.MQTT.Broker.Host)
	}
	if cfg.MQTT.Auth.Username != "env-user" || cfg.MQTT.Auth.Password != "env-pass" {
		t.Errorf("MQTT.Auth = %+v, want env credentials", cfg.MQTT.Auth)
	}
	if cfg.Device.Name != "Env Device" {
		t.Errorf("Device.Name = %q, want %q", cfg.Device.Name, "Env Device")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid: [yaml: content"))
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad qos",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: "mqtt.qos",
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.MQTT.Broker.Port = 0 },
			wantErr: "mqtt.broker.port",
		},
		{
			name:    "empty device name",
			mutate:  func(c *Config) { c.Device.Name = "" },
			wantErr: "device.name",
		},
		{
			name:    "zero period",
			mutate:  func(c *Config) { c.Report.Period = 0 },
			wantErr: "report.period",
		},
		{
			name:    "empty prefix",
			mutate:  func(c *Config) { c.HomeAssistant.DiscoveryPrefix = "" },
			wantErr: "discovery_prefix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Device.Name = "test-host" // independent of the local hostname
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
