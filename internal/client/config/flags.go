package config

import (
	"flag"
	"os"

	"github.com/skye-prog/ai-workorder-management/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   base URL of the backend
//	-l string   log level (debug, info, warn, error)
//
// Only the flags handled here are parsed, via flagx.FilterArgs, so the JSON
// stage's -c/-config flags pass through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
