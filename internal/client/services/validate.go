package services

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeText trims s and rejects it when nothing is left.
func NormalizeText(what, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, what)
	}
	return s, nil
}

// NormalizeItemURL accepts absolute https URLs. When domain is not empty the
// URL's registrable domain must equal it, so jp.mercari.com passes for
// mercari.com but mercari.com.evil.example does not.
func NormalizeItemURL(raw, domain string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: url must not be empty", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("%w: url must start with https://", ErrInvalidInput)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: url has no host", ErrInvalidInput)
	}

	if domain = strings.TrimSpace(domain); domain != "" {
		registrable, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(host))
		if err != nil || !strings.EqualFold(registrable, domain) {
			return "", fmt.Errorf("%w: %s is not a %s url", ErrInvalidInput, host, domain)
		}
	}
	return u.String(), nil
}

func validID(what string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be a positive number", ErrInvalidInput, what)
	}
	return nil
}
