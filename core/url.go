package core

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeLinkedInURL reduces a profile URL to its canonical identity form:
// scheme + host + path, lowercased scheme and host, no trailing slash on the
// path, and no query string or fragment. A URL without a scheme is assumed
// to be https.
func NormalizeLinkedInURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyLinkedInURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidLinkedInURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidLinkedInURL, raw)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	path := strings.TrimRight(u.Path, "/")

	return scheme + "://" + host + path, nil
}
