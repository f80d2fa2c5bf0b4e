// Package urlutil canonicalizes URLs before they are stored or compared.
package urlutil

import (
	"net/url"
	"strings"
)

// Query parameters that carry tracking noise, never content identity.
var trackingParams = map[string]bool{
	"fbclid":   true,
	"gclid":    true,
	"igshid":   true,
	"ref":      true,
	"referrer": true,
}

// CleanURL canonicalizes a URL: lowercases the scheme and host, removes
// default ports and fragments, strips tracking query parameters, and
// sorts the remaining query. It is idempotent; unparseable input is
// returned unchanged.
func CleanURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Scheme == "http" {
		u.Host = strings.TrimSuffix(u.Host, ":80")
	}
	if u.Scheme == "https" {
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}
	u.Fragment = ""

	q := u.Query()
	for key := range q {
		if trackingParams[key] || strings.HasPrefix(key, "utm_") {
			q.Del(key)
		}
	}
	// Encode sorts keys, so equivalent queries compare equal.
	u.RawQuery = q.Encode()

	return u.String()
}
