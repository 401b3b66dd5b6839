package models

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes to NFKD and strips combining marks, so
// accented letters fold to their ASCII base ("é" -> "e").
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeSlugKey reduces any human-typed or URL-borne slug to a
// canonical lookup key: percent-decoded, Unicode-folded, lowercased,
// with every run of dashes/punctuation/whitespace collapsed to a
// single hyphen and edge hyphens trimmed. Idempotent, so a stored
// slug and an incoming URL segment that differ only in casing or
// dash characters map to the same key.
func NormalizeSlugKey(raw string) string {
	s := raw
	if dec, err := url.PathUnescape(s); err == nil {
		s = dec
	}
	if folded, _, err := transform.String(asciiFold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		// Everything else (ASCII hyphens, Unicode dashes, spaces,
		// punctuation) separates words.
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
