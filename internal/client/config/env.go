package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/gophprofile/internal/flagx"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file (explicit -env, else ./.env if present) and
// then overlays cfg with the GOPHPROFILE_* variables. Unset variables leave
// the current values alone. An explicit -env file that cannot be read, or a
// malformed variable, panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if _, err := os.Stat(defaultEnvFile); err == nil {
		if err := godotenv.Load(defaultEnvFile); err != nil {
			panic(err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
