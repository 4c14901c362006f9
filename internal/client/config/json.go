package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophprofile/internal/flagx"
	"github.com/dmitrijs2005/gophprofile/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero so a partial file only overrides what it
// names.
type JsonConfig struct {
	AuthURL         *string         `json:"auth_url"`
	ProfileURL      *string         `json:"profile_url"`
	StorePath       *string         `json:"store_path"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	TokenTTLMinutes *int            `json:"token_ttl_minutes"`
	LogLevel        *string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without the flag nothing happens. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.AuthURL != nil {
		cfg.AuthURL = *jc.AuthURL
	}
	if jc.ProfileURL != nil {
		cfg.ProfileURL = *jc.ProfileURL
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.TokenTTLMinutes != nil {
		cfg.TokenTTLMinutes = *jc.TokenTTLMinutes
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
