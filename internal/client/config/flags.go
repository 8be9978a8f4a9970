package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/hisao5232/my-price-tracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the API
//	-i int      online check interval in seconds
//	-t int      request timeout in seconds (0 disables it)
//	-l string   display locale
//
// Only these flags are looked at (flagx.FilterArgs), so -c survives for
// parseFile. A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the price tracker API")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "display locale, e.g. ja or en-US")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Untouched durations keep their sub-second precision.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
