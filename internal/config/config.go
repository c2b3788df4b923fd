package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	StoreURI     string
	DatabaseName string
	APIEndpoint  string
	BcryptCost   int
	StoreTimeout time.Duration
	LogLevel     string
}

// LoadDefaults sets values suitable for a local demo: an in-process store
// and no remote API.
func (c *Config) LoadDefaults() {
	c.StoreURI = "memory://"
	c.DatabaseName = "health_ai"
	c.APIEndpoint = ""
	c.BcryptCost = bcrypt.DefaultCost
	c.StoreTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the environment, then the JSON file and
// finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
