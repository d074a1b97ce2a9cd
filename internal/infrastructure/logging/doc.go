// Package logging provides structured logging for hass-sysmon.
//
// It wraps the standard library log/slog with configuration-driven
// format and level selection, plus default service/version fields on
// every record.
//
// Usage:
//
//	log := logging.New(cfg.Logging, version)
//	log.Info("daemon started", "device", cfg.Device.Name)
package logging
