package config

import "time"

// Config holds runtime settings for the TruthGuard CLI.
//
// Fields:
//   - APIBaseURL: base URL of the verification service API, including the
//     /api prefix.
//   - RequestTimeout: end-to-end bound for every HTTP request; timeouts are
//     indistinguishable from other transport failures downstream.
//   - StorePath: SQLite file holding the persisted session (token + profile).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.StorePath = "truthguard.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
