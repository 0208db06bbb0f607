package config

import "time"

// Config holds runtime settings for the fleet client.
//
// Fields:
//   - BaseURL: base path of the fleet server's JSON API; all endpoint paths
//     are relative to it.
//   - RequestTimeout: per-request HTTP timeout (the pairing stream is exempt).
//   - IdleAfter: inactivity window before the activity monitor goes idle.
//   - PollEvery: booking refresh period while idle.
//   - CredentialDB: path of the sqlite file persisting the login credential.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	IdleAfter      time.Duration
	PollEvery      time.Duration
	CredentialDB   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:1323/data"
	c.RequestTimeout = 15 * time.Second
	c.IdleAfter = 30 * time.Second
	c.PollEvery = 60 * time.Second
	c.CredentialDB = "fleetclient.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
