// Package mqtt provides the MQTT transport for hass-sysmon.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS and publish timeouts
//   - Last Will and Testament (LWT) bound to the Home Assistant
//     availability topic for offline detection
//
// # Architecture
//
// The daemon is publish-only. Home Assistant subscribes to the
// discovery prefix and the device state topics; nothing subscribes
// back to the daemon, so there is no subscription support here.
//
//	hass-sysmon → MQTT Broker → Home Assistant MQTT integration
//
// # Security Considerations
//
//   - TLS is recommended for non-local brokers (mqtt.broker.tls=true)
//   - Credentials are passed through to the broker; authentication
//     policy is the broker's concern
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT, mqtt.Will{
//	    Topic:   topics.AvailabilityState(device.ID),
//	    Payload: hass.PayloadOffline,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.Publish(topic, payload, 1, true)
package mqtt
