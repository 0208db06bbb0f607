package config

import (
	"encoding/json"
	"os"

	"github.com/sjhoeksma/myfleetboatrobot/internal/flagx"
	"github.com/sjhoeksma/myfleetboatrobot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	IdleAfter      timex.Duration `json:"idle_after"`
	PollEvery      timex.Duration `json:"poll_every"`
	CredentialDB   string         `json:"credential_db"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on
// read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.IdleAfter.Duration > 0 {
		cfg.IdleAfter = jc.IdleAfter.Duration
	}
	if jc.PollEvery.Duration > 0 {
		cfg.PollEvery = jc.PollEvery.Duration
	}
	if jc.CredentialDB != "" {
		cfg.CredentialDB = jc.CredentialDB
	}
}
