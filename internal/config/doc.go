// Package config loads runtime configuration for dietdash.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-e or -env-file, otherwise ./.env when present) and the
//     process environment; real environment variables win over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   store URI (mongodb://, mongodb+srv://, postgres://, memory://)
//	-d string   database name (MongoDB only)
//	-a string   remote dashboard API endpoint; empty reads documents from the store
//	-b int      bcrypt cost
//	-t duration store call timeout ("5s", "1500ms")
//	-l string   log level (debug, info, warn, error)
//
// Environment variables
//
//	MONGO_URI, DATABASE_NAME, API_ENDPOINT, BCRYPT_COST, STORE_TIMEOUT, LOG_LEVEL
//
// The store timeout uses Go duration syntax everywhere: -t 2s,
// STORE_TIMEOUT=2s and "store_timeout": "2s" are equivalent.
//
// # JSON schema
//
// store_timeout is a timex.Duration, so it can be "5s" or integer
// nanoseconds:
//
//	{
//	  "store_uri": "mongodb://localhost:27017",
//	  "database_name": "health_ai",
//	  "api_endpoint": "",
//	  "bcrypt_cost": 12,
//	  "store_timeout": "5s",
//	  "log_level": "info"
//	}
package config
