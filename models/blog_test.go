package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":        "hello-world",
		"  Hello   World  ":  "hello-world",
		"::Leading Colons":   "leading-colons",
		"Already-Slugged":    "already-slugged",
		"Dots. And, Commas!": "dots-and-commas",
		"--edge---hyphens--": "edge-hyphens",
		"MiXeD CaSe 123":     "mixed-case-123",
		"!!!":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "a  b  c", "Go: The Good Parts", "2024 Year In Review"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestSlugifyAlphabet(t *testing.T) {
	slug := Slugify("Ünïcode & Symbols © 2024 — dash")
	for _, r := range slug {
		valid := r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_'
		assert.True(t, valid, "unexpected rune %q in %q", r, slug)
	}
	assert.NotEqual(t, "-", slug)
	if slug != "" {
		assert.NotEqual(t, byte('-'), slug[0])
		assert.NotEqual(t, byte('-'), slug[len(slug)-1])
	}
}

func TestNewBlogPostDraft(t *testing.T) {
	now := time.Now().UTC()
	post, err := NewBlogPost(BlogInput{
		Title:   strPtr("Hello World"),
		Excerpt: strPtr("This is a test excerpt."),
		Content: strPtr("Some content here."),
		Status:  strPtr("draft"),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "hello-world", post.Slug)
	assert.Equal(t, "hello-world", post.SlugKey)
	assert.Equal(t, StatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, "Admin", post.Author)
	assert.Equal(t, now, post.CreatedAt)
}

func TestNewBlogPostPublished(t *testing.T) {
	now := time.Now().UTC()
	post, err := NewBlogPost(BlogInput{
		Title:   strPtr("Hello World"),
		Content: strPtr("Some content here."),
		Status:  strPtr("published"),
	}, now)
	require.NoError(t, err)

	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, now, *post.PublishedAt)
}

func TestNewBlogPostExplicitSlugWins(t *testing.T) {
	post, err := NewBlogPost(BlogInput{
		Title:   strPtr("Hello World"),
		Slug:    strPtr("My Custom SLUG"),
		Content: strPtr("Some content here."),
	}, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, "my-custom-slug", post.Slug)
}

func TestNewBlogPostValidation(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name string
		in   BlogInput
		msg  string
	}{
		{"missing title", BlogInput{Content: strPtr("Some content here.")}, "Title is required"},
		{"short title", BlogInput{Title: strPtr("ab"), Content: strPtr("Some content here.")}, "Title must be at least 3 chars"},
		{"missing content", BlogInput{Title: strPtr("Hello World")}, "Content is required"},
		{"short content", BlogInput{Title: strPtr("Hello World"), Content: strPtr("short")}, "Content must be at least 10 chars"},
		{"short excerpt", BlogInput{Title: strPtr("Hello World"), Excerpt: strPtr("tiny"), Content: strPtr("Some content here.")}, "Excerpt must be at least 10 chars"},
		{"bad status", BlogInput{Title: strPtr("Hello World"), Content: strPtr("Some content here."), Status: strPtr("archived")}, "status must be draft or published"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBlogPost(tc.in, now)
			require.Error(t, err)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestApplyUpdatePublishThenRevert(t *testing.T) {
	created := time.Now().UTC().Add(-time.Hour)
	post, err := NewBlogPost(BlogInput{
		Title:   strPtr("Hello World"),
		Excerpt: strPtr("This is a test excerpt."),
		Content: strPtr("Some content here."),
		Status:  strPtr("draft"),
	}, created)
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	// draft -> published sets publishedAt
	publishTime := time.Now().UTC()
	require.NoError(t, post.ApplyUpdate(BlogInput{Status: strPtr("published")}, publishTime))
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, publishTime, *post.PublishedAt)
	assert.Equal(t, publishTime, post.UpdatedAt)

	// staying published keeps the original timestamp
	later := publishTime.Add(time.Minute)
	require.NoError(t, post.ApplyUpdate(BlogInput{Excerpt: strPtr("A different excerpt now.")}, later))
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, publishTime, *post.PublishedAt)

	// published -> draft clears publishedAt
	require.NoError(t, post.ApplyUpdate(BlogInput{Status: strPtr("draft")}, later))
	assert.Nil(t, post.PublishedAt)
}

func TestApplyUpdateRederivesSlug(t *testing.T) {
	post, err := NewBlogPost(BlogInput{
		Title:   strPtr("Hello World"),
		Content: strPtr("Some content here."),
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, "hello-world", post.Slug)

	// new title, no slug supplied: slug follows the title
	require.NoError(t, post.ApplyUpdate(BlogInput{Title: strPtr("Brand New Title")}, time.Now().UTC()))
	assert.Equal(t, "brand-new-title", post.Slug)
	assert.Equal(t, "brand-new-title", post.SlugKey)

	// explicit slug is normalized, not replaced by the title
	require.NoError(t, post.ApplyUpdate(BlogInput{Slug: strPtr("Custom Slug Here")}, time.Now().UTC()))
	assert.Equal(t, "custom-slug-here", post.Slug)
}

func TestCleanTags(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, CleanTags([]string{" Go ", "WEB", "", "  "}))
	assert.Empty(t, CleanTags(nil))
}
