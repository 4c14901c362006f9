package config

import "time"

const (
	DefaultAuthURL    = "https://dummyjson.com/auth/login"
	DefaultProfileURL = "https://dummyjson.com/auth/me"
)

// Config holds runtime settings for the profile CLI.
//
// Fields:
//   - AuthURL: credential exchange endpoint (POST).
//   - ProfileURL: protected user endpoint (GET, bearer token).
//   - StorePath: SQLite file that keeps the session token between runs;
//     empty keeps it in memory for the current run only.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - TokenTTLMinutes: lifetime requested from the auth endpoint; zero leaves
//     the server default.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	AuthURL         string        `env:"GOPHPROFILE_AUTH_URL"`
	ProfileURL      string        `env:"GOPHPROFILE_PROFILE_URL"`
	StorePath       string        `env:"GOPHPROFILE_STORE_PATH"`
	RequestTimeout  time.Duration `env:"GOPHPROFILE_REQUEST_TIMEOUT"`
	TokenTTLMinutes int           `env:"GOPHPROFILE_TOKEN_TTL_MINUTES"`
	LogLevel        string        `env:"GOPHPROFILE_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthURL = DefaultAuthURL
	c.ProfileURL = DefaultProfileURL
	c.StorePath = "gophprofile.db"
	c.RequestTimeout = 15 * time.Second
	c.TokenTTLMinutes = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (optionally seeded from a dotenv file)
// and command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
