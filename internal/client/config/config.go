package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hisao5232/my-price-tracker/internal/logging"
	"go.uber.org/multierr"
)

// Chart label granularities.
const (
	GranularityDate     = "date"
	GranularityDateTime = "datetime"
)

// Config holds runtime settings for the price tracker CLI. It is built once at
// start-up and passed down explicitly; nothing reads it from globals.
type Config struct {
	// APIBaseURL is the root of the remote REST API.
	APIBaseURL string
	// APIKey is sent as x-api-key on privileged calls only.
	APIKey string

	// RequestTimeout bounds a single HTTP exchange. Zero means no timeout.
	RequestTimeout time.Duration
	// ReadRetries is how many extra attempts a failed read gets on
	// transport errors. Mutations are never retried.
	ReadRetries    int
	RetryBaseDelay time.Duration

	OnlineCheckInterval time.Duration

	Locale           string
	TimeZone         string
	Currency         string
	ChartGranularity string

	// MarketplaceDomain, when set, restricts tracked URLs to that
	// registrable domain (e.g. mercari.com).
	MarketplaceDomain string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.APIKey = ""
	c.RequestTimeout = 2 * time.Minute
	c.ReadRetries = 2
	c.RetryBaseDelay = 200 * time.Millisecond
	c.OnlineCheckInterval = 10 * time.Second
	c.Locale = "ja"
	c.TimeZone = "Local"
	c.Currency = "¥"
	c.ChartGranularity = GranularityDate
	c.MarketplaceDomain = "mercari.com"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config from defaults, then the config file, the
// environment and finally the flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Location resolves TimeZone; "" and "Local" mean the process time zone.
func (c *Config) Location() (*time.Location, error) {
	switch strings.TrimSpace(c.TimeZone) {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// Validate reports settings that would make the client misbehave later.
func (c *Config) Validate() error {
	var errs error

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = multierr.Append(errs, fmt.Errorf("api url %q is not an absolute URL", c.APIBaseURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = multierr.Append(errs, fmt.Errorf("api url scheme %q is not supported", u.Scheme))
	}

	if c.RequestTimeout < 0 {
		errs = multierr.Append(errs, errors.New("request timeout must not be negative"))
	}
	if c.ReadRetries < 0 {
		errs = multierr.Append(errs, errors.New("read retries must not be negative"))
	}
	if c.RetryBaseDelay < 0 {
		errs = multierr.Append(errs, errors.New("retry base delay must not be negative"))
	}
	if c.OnlineCheckInterval <= 0 {
		errs = multierr.Append(errs, errors.New("online check interval must be positive"))
	}

	switch c.ChartGranularity {
	case GranularityDate, GranularityDateTime:
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown chart granularity %q", c.ChartGranularity))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := c.Location(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("time zone: %w", err))
	}

	return errs
}
