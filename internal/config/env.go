package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/dietdash/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv overlays values from a dotenv file and the environment. An
// explicitly requested file must exist; the default ./.env is optional.
// A variable exported with an empty value does not hide the file's value.
// Malformed values panic, like the JSON and flag loaders.
func parseEnv(config *Config) {
	file := flagx.EnvFileFlags()
	explicit := file != ""
	if !explicit {
		file = defaultEnvFile
	}

	values, err := godotenv.Read(file)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		values = map[string]string{}
	}

	applyEnv(config, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
}

func applyEnv(config *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup("MONGO_URI"); ok && v != "" {
		config.StoreURI = v
	}
	if v, ok := lookup("DATABASE_NAME"); ok && v != "" {
		config.DatabaseName = v
	}
	if v, ok := lookup("API_ENDPOINT"); ok {
		config.APIEndpoint = v
	}
	if v, ok := lookup("BCRYPT_COST"); ok && v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = cost
	}
	if v, ok := lookup("STORE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.StoreTimeout = d
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
}
