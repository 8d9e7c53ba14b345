package oracle

import (
	"crypto/tls"
	"time"
)

// Config configures the HTTP client, matching the Valhalla client
// example's ClientConfig: a base endpoint plus optional overrides.
type Config struct {
	Endpoint  string
	TLSConfig *tls.Config

	// SnapTimeout and DirectionsTimeout default to 10s and 30s
	// respectively when nil.
	SnapTimeout       *time.Duration
	DirectionsTimeout *time.Duration

	// DefaultSnapRadiusM defaults to 100m when nil.
	DefaultSnapRadiusM *float64
}

func (c Config) snapTimeout() time.Duration {
	if c.SnapTimeout != nil {
		return *c.SnapTimeout
	}
	return 10 * time.Second
}

func (c Config) directionsTimeout() time.Duration {
	if c.DirectionsTimeout != nil {
		return *c.DirectionsTimeout
	}
	return 30 * time.Second
}

func (c Config) defaultSnapRadiusM() float64 {
	if c.DefaultSnapRadiusM != nil {
		return *c.DefaultSnapRadiusM
	}
	return 100
}
