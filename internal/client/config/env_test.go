package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv("PRICETRACKER_API_URL", "https://env.example.com")
	t.Setenv("PRICETRACKER_API_KEY", "  k-123  ")
	t.Setenv("PRICETRACKER_REQUEST_TIMEOUT", "45s")
	t.Setenv("PRICETRACKER_READ_RETRIES", "5")
	t.Setenv("PRICETRACKER_LOCALE", "en-US")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, "k-123", cfg.APIKey)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.ReadRetries)
	assert.Equal(t, "en-US", cfg.Locale)
}

func Test_parseEnv_EmptyValuesAreIgnored(t *testing.T) {
	t.Setenv("PRICETRACKER_API_URL", "")
	t.Setenv("PRICETRACKER_ONLINE_CHECK_INTERVAL", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
}
