package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/dietdash/internal/flagx"
	"github.com/dmitrijs2005/dietdash/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields leave
// the current value alone.
type JsonConfig struct {
	StoreURI     string         `json:"store_uri"`
	DatabaseName string         `json:"database_name"`
	APIEndpoint  *string        `json:"api_endpoint"`
	BcryptCost   int            `json:"bcrypt_cost"`
	StoreTimeout timex.Duration `json:"store_timeout"`
	LogLevel     string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config, if any, into config. It
// panics when the file cannot be read or decoded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.StoreURI != "" {
		config.StoreURI = c.StoreURI
	}
	if c.DatabaseName != "" {
		config.DatabaseName = c.DatabaseName
	}
	if c.APIEndpoint != nil {
		config.APIEndpoint = *c.APIEndpoint
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.StoreTimeout.Duration != 0 {
		config.StoreTimeout = c.StoreTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
