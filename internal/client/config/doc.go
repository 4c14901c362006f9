// Package config loads runtime configuration for the profile CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables, optionally seeded from a dotenv file given via
//     -env (or ./.env when present). Variables already set in the process
//     environment win over the dotenv file.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-auth string    auth endpoint URL
//	-profile string profile endpoint URL
//	-db string      path of the local session store
//	-t int          request timeout (seconds, 0 disables)
//	-ttl int        token lifetime requested at login (minutes)
//	-log string     log level
//
// # JSON schema
//
//	{
//	  "auth_url": "https://dummyjson.com/auth/login",
//	  "profile_url": "https://dummyjson.com/auth/me",
//	  "store_path": "gophprofile.db",
//	  "request_timeout": "15s",
//	  "token_ttl_minutes": 30,
//	  "log_level": "info"
//	}
//
// # Environment
//
//	GOPHPROFILE_AUTH_URL, GOPHPROFILE_PROFILE_URL, GOPHPROFILE_STORE_PATH,
//	GOPHPROFILE_REQUEST_TIMEOUT, GOPHPROFILE_TOKEN_TTL_MINUTES,
//	GOPHPROFILE_LOG_LEVEL
package config
