package utils

import (
	"net/url"
	"strings"
)

// NormalizeOrigin reduces an origin string to "scheme://host" in
// lowercase: zero-width characters removed, trailing slashes dropped,
// bare "host:port" values coerced to http.
func NormalizeOrigin(s string) string {
	cleaned := stripZeroWidth(strings.TrimSpace(s))
	if cleaned == "" {
		return ""
	}
	cleaned = strings.TrimRight(cleaned, "/")

	if strings.HasPrefix(cleaned, "http://") || strings.HasPrefix(cleaned, "https://") {
		if u, err := url.Parse(cleaned); err == nil && u.Host != "" {
			return strings.ToLower(u.Scheme + "://" + u.Host)
		}
		return strings.ToLower(cleaned)
	}
	// Not a full URL (e.g. "localhost:5173"): assume http
	return strings.ToLower("http://" + cleaned)
}

// ParseOriginList splits a comma-separated CLIENT_ORIGIN value into a
// normalized allow-list. A value of "*" means allow all and yields
// (nil, true).
func ParseOriginList(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "*" {
		return nil, true
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = stripZeroWidth(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		out = append(out, NormalizeOrigin(part))
	}
	return out, false
}

func stripZeroWidth(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\u200B', '\u200C', '\u200D', '\uFEFF':
			return -1
		}
		return r
	}, s)
}
