package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hisao5232/my-price-tracker/internal/flagx"
	"github.com/hisao5232/my-price-tracker/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Pointer fields tell
// "absent" apart from "zero", so a file only overrides the keys it names.
type FileConfig struct {
	APIBaseURL          *string         `json:"api_url" yaml:"api_url"`
	APIKey              *string         `json:"api_key" yaml:"api_key"`
	RequestTimeout      *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ReadRetries         *int            `json:"read_retries" yaml:"read_retries"`
	RetryBaseDelay      *timex.Duration `json:"retry_base_delay" yaml:"retry_base_delay"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	Locale              *string         `json:"locale" yaml:"locale"`
	TimeZone            *string         `json:"time_zone" yaml:"time_zone"`
	Currency            *string         `json:"currency" yaml:"currency"`
	ChartGranularity    *string         `json:"chart_granularity" yaml:"chart_granularity"`
	MarketplaceDomain   *string         `json:"marketplace_domain" yaml:"marketplace_domain"`
	LogLevel            *string         `json:"log_level" yaml:"log_level"`
	LogFormat           *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c / -config, if any.
// Read and decode errors panic; a broken config file is a start-up bug.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	fc, err := readFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc FileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".json", "":
		err = json.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.APIKey, fc.APIKey)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ReadRetries != nil {
		cfg.ReadRetries = *fc.ReadRetries
	}
	if fc.RetryBaseDelay != nil {
		cfg.RetryBaseDelay = fc.RetryBaseDelay.Duration
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	setString(&cfg.Locale, fc.Locale)
	setString(&cfg.TimeZone, fc.TimeZone)
	setString(&cfg.Currency, fc.Currency)
	setString(&cfg.ChartGranularity, fc.ChartGranularity)
	setString(&cfg.MarketplaceDomain, fc.MarketplaceDomain)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
