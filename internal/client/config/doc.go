// Package config loads runtime configuration for the price tracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. The extension picks
//     the decoder: .json, or .yaml / .yml.
//  3. Environment variables with the PRICETRACKER_ prefix, e.g.
//     PRICETRACKER_API_URL and PRICETRACKER_API_KEY.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the price tracker API
//	-i int      online status check interval (seconds)
//	-t int      HTTP request timeout (seconds, 0 disables it)
//	-l string   display locale, e.g. ja or en-US
//
// The API key is deliberately not a flag; keep it in the environment or in a
// file readable only by you.
//
// # File schema
//
// Durations are either strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://tracker.example.com",
//	  "api_key": "secret",
//	  "request_timeout": "2m",
//	  "read_retries": 2,
//	  "retry_base_delay": "200ms",
//	  "online_check_interval": "10s",
//	  "locale": "ja",
//	  "time_zone": "Asia/Tokyo",
//	  "currency": "¥",
//	  "chart_granularity": "date",
//	  "marketplace_domain": "mercari.com",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
package config
