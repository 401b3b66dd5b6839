package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogPost is the blog document stored in the "blogs" collection.
// PublishedAt is present iff Status is "published"; SlugKey is the
// server-maintained normalized lookup key for slug resolution.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	SlugKey     string             `bson:"slugKey" json:"-"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	Tags        []string           `bson:"tags" json:"tags"`
	CoverImage  string             `bson:"coverImage" json:"coverImage"`
	Author      string             `bson:"author" json:"author"`
	Status      string             `bson:"status" json:"status"`
	PublishedAt *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BlogInput carries a create/update request body. Pointer fields
// distinguish "absent" from "empty" so PUT can be a partial update.
type BlogInput struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	CoverImage *string   `json:"coverImage"`
	Author     *string   `json:"author"`
	Status     *string   `json:"status"`
}

var (
	leadingColons = regexp.MustCompile(`^:+`)
	slugDrop      = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugSpaces    = regexp.MustCompile(`\s+`)
	slugHyphens   = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug: lowercase, leading colons removed, only
// letters/digits/underscore/space/hyphen kept, space runs to hyphens,
// hyphen runs collapsed, edge hyphens trimmed. Idempotent.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = leadingColons.ReplaceAllString(s, "")
	s = slugDrop.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NewBlogPost builds a document from a create request: defaults
// applied, slug derived, publishedAt set per status.
func NewBlogPost(in BlogInput, now time.Time) (*BlogPost, error) {
	post := &BlogPost{
		Author:    "Admin",
		Status:    StatusDraft,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Title != nil {
		post.Title = strings.TrimSpace(*in.Title)
	}
	if in.Slug != nil {
		post.Slug = strings.TrimSpace(*in.Slug)
	}
	if in.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Tags != nil {
		post.Tags = CleanTags(*in.Tags)
	}
	if in.CoverImage != nil {
		post.CoverImage = strings.TrimSpace(*in.CoverImage)
	}
	if in.Author != nil && strings.TrimSpace(*in.Author) != "" {
		post.Author = strings.TrimSpace(*in.Author)
	}
	if in.Status != nil && *in.Status != "" {
		post.Status = *in.Status
	}

	post.deriveSlug()
	if err := post.Validate(); err != nil {
		return nil, err
	}
	post.applyStatus(now)
	return post, nil
}

// ApplyUpdate applies the supplied fields of a partial update onto an
// existing document, re-deriving slug and publishedAt.
func (p *BlogPost) ApplyUpdate(in BlogInput, now time.Time) error {
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
		// Title change re-derives the slug unless one was supplied
		if in.Slug == nil {
			p.Slug = ""
		}
	}
	if in.Slug != nil {
		p.Slug = strings.TrimSpace(*in.Slug)
	}
	if in.Excerpt != nil {
		p.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Tags != nil {
		p.Tags = CleanTags(*in.Tags)
	}
	if in.CoverImage != nil {
		p.CoverImage = strings.TrimSpace(*in.CoverImage)
	}
	if in.Author != nil && strings.TrimSpace(*in.Author) != "" {
		p.Author = strings.TrimSpace(*in.Author)
	}
	if in.Status != nil && *in.Status != "" {
		p.Status = *in.Status
	}

	p.deriveSlug()
	if err := p.Validate(); err != nil {
		return err
	}
	p.applyStatus(now)
	p.UpdatedAt = now
	return nil
}

func (p *BlogPost) deriveSlug() {
	if p.Slug == "" && p.Title != "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Slug != "" {
		p.Slug = Slugify(p.Slug)
	}
	p.SlugKey = NormalizeSlugKey(p.Slug)
}

// applyStatus sets or clears PublishedAt based on the current status.
func (p *BlogPost) applyStatus(now time.Time) {
	switch p.Status {
	case StatusPublished:
		if p.PublishedAt == nil {
			t := now
			p.PublishedAt = &t
		}
	case StatusDraft:
		p.PublishedAt = nil
	}
}

func (p *BlogPost) Validate() error {
	if len(strings.TrimSpace(p.Title)) < 3 {
		if strings.TrimSpace(p.Title) == "" {
			return errors.New("Title is required")
		}
		return errors.New("Title must be at least 3 chars")
	}
	if p.Slug == "" {
		return errors.New("Slug is required")
	}
	if p.Excerpt != "" && len(p.Excerpt) < 10 {
		return errors.New("Excerpt must be at least 10 chars")
	}
	if p.Content == "" {
		return errors.New("Content is required")
	}
	if len(p.Content) < 10 {
		return errors.New("Content must be at least 10 chars")
	}
	if p.Status != StatusDraft && p.Status != StatusPublished {
		return errors.New("status must be draft or published")
	}
	return nil
}

// CleanTags trims, lowercases and drops empty tags.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
