package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophprofile/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-auth string    auth endpoint URL
//	-profile string profile endpoint URL
//	-db string      local session store path
//	-t int          request timeout in seconds
//	-ttl int        requested token lifetime in minutes
//	-log string     log level
//
// Only these flags are taken from os.Args (see flagx.FilterArgs); anything
// else is left for other parsers. Malformed values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-auth", "-profile", "-db", "-t", "-ttl", "-log"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.AuthURL, "auth", cfg.AuthURL, "auth endpoint URL")
	fs.StringVar(&cfg.ProfileURL, "profile", cfg.ProfileURL, "profile endpoint URL")
	fs.StringVar(&cfg.StorePath, "db", cfg.StorePath, "path of the local session store")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 disables)")
	fs.IntVar(&cfg.TokenTTLMinutes, "ttl", cfg.TokenTTLMinutes, "token lifetime requested at login (in minutes)")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
