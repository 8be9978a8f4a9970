package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable the CLI reads.
const EnvPrefix = "PRICETRACKER"

// parseEnv overlays cfg with PRICETRACKER_* variables that are set and
// non-empty. Durations accept time.ParseDuration syntax ("30s").
func parseEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	envString(v, "api_url", &cfg.APIBaseURL)
	envString(v, "api_key", &cfg.APIKey)
	envString(v, "locale", &cfg.Locale)
	envString(v, "time_zone", &cfg.TimeZone)
	envString(v, "currency", &cfg.Currency)
	envString(v, "chart_granularity", &cfg.ChartGranularity)
	envString(v, "marketplace_domain", &cfg.MarketplaceDomain)
	envString(v, "log_level", &cfg.LogLevel)
	envString(v, "log_format", &cfg.LogFormat)

	if envSet(v, "request_timeout") {
		cfg.RequestTimeout = v.GetDuration("request_timeout")
	}
	if envSet(v, "retry_base_delay") {
		cfg.RetryBaseDelay = v.GetDuration("retry_base_delay")
	}
	if envSet(v, "online_check_interval") {
		cfg.OnlineCheckInterval = v.GetDuration("online_check_interval")
	}
	if envSet(v, "read_retries") {
		cfg.ReadRetries = v.GetInt("read_retries")
	}
}

func envSet(v *viper.Viper, key string) bool {
	return strings.TrimSpace(v.GetString(key)) != ""
}

func envString(v *viper.Viper, key string, dst *string) {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		*dst = s
	}
}
