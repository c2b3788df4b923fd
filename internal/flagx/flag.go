// Package flagx lets several loaders share os.Args: each one picks out only
// the flags it owns before parsing, so unknown flags never abort a loader.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs keeps the allowed flags from args together with their values.
// Both "-f value" and "-f=value" forms are recognised; a following token that
// starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}
	return filtered
}

// StringFlag returns the value of the last occurrence of any of names in
// args, or "" when none is present. names are given without the dash.
func StringFlag(args []string, names ...string) string {
	allowed := make([]string, 0, len(names))
	for _, n := range names {
		allowed = append(allowed, "-"+n)
	}

	var value string
	fs := flag.NewFlagSet(names[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, allowed))
	return value
}

// JsonConfigFlags returns the JSON config path given with -c or -config.
func JsonConfigFlags() string {
	return StringFlag(os.Args[1:], "c", "config")
}

// EnvFileFlags returns the dotenv path given with -e or -env-file.
func EnvFileFlags() string {
	return StringFlag(os.Args[1:], "e", "env-file")
}
