package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlugKey(t *testing.T) {
	cases := map[string]string{
		"hello-world":      "hello-world",
		"Hello-World":      "hello-world",
		"hello world":      "hello-world",
		"hello%20world":    "hello-world",
		"hello–world":      "hello-world", // en dash
		"hello—world":      "hello-world", // em dash
		"café-notes":       "cafe-notes",
		"--hello--world--": "hello-world",
		"hello...world":    "hello-world",
		"HELLO_WORLD":      "hello-world",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeSlugKey(in), "input %q", in)
	}
}

func TestNormalizeSlugKeyIdempotent(t *testing.T) {
	inputs := []string{"Hello—World", "café au lait", "a--b--c", "%20x%20"}
	for _, in := range inputs {
		once := NormalizeSlugKey(in)
		assert.Equal(t, once, NormalizeSlugKey(once))
	}
}

func TestNormalizeSlugKeyMatchesMangledSlug(t *testing.T) {
	// The stored key and the key of a mangled URL form of the same
	// slug must agree, or resolve lookups would miss.
	slug := Slugify("Hello World Again")
	key := NormalizeSlugKey(slug)
	mangled := []string{
		"Hello-World-Again",
		"hello%2Dworld%2Dagain",
		"hello–world–again", // en dashes
		"hello-world-again/",
	}
	for _, m := range mangled {
		assert.Equal(t, key, NormalizeSlugKey(m), "mangled %q", m)
	}
}

func TestNormalizeSlugKeyEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizeSlugKey(""))
	assert.Equal(t, "", NormalizeSlugKey("---"))
	assert.Equal(t, "", NormalizeSlugKey("!!!"))
}
