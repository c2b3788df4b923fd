package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/dietdash/internal/flagx"
)

// parseFlags overlays the flags documented in the package comment. Only
// those flags are picked out of os.Args, so -c and -e never reach this
// FlagSet. The timeout takes a duration string ("5s", "1500ms"), the same
// format as STORE_TIMEOUT and the JSON store_timeout.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-a", "-b", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.StoreURI, "s", config.StoreURI, "store URI")
	fs.StringVar(&config.DatabaseName, "d", config.DatabaseName, "database name")
	fs.StringVar(&config.APIEndpoint, "a", config.APIEndpoint, "remote dashboard API endpoint")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.DurationVar(&config.StoreTimeout, "t", config.StoreTimeout, "store call timeout (e.g. 5s)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
