package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/inkpress"
)

var testCfg = inkpress.SiteConfig{
	Name:        "Calyptra",
	URL:         "http://example.test",
	Description: "Notes on proof systems",
	Author:      "N. Author",
}

func TestHomeRendersFeaturedAndGrid(t *testing.T) {
	v := New(testCfg)
	featured := &inkpress.PostMeta{Slug: "hero", Title: "Hero Post", Category: "Proofs", Excerpt: "Front and center."}
	posts := []inkpress.PostMeta{
		{Slug: "one", Title: "Post One", Image: "images/one.png"},
		{Slug: "two", Title: "Post Two", URL: "https://mirror.example/two"},
	}

	var buf bytes.Buffer
	require.NoError(t, v.Home(featured, posts).Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, "<title>Calyptra</title>")
	assert.Contains(t, out, `class="featured"`)
	assert.Contains(t, out, "Hero Post")
	assert.Contains(t, out, `href="/blog/one/"`)
	assert.Contains(t, out, `src="/public/images/one.png"`)
	assert.Contains(t, out, `href="https://mirror.example/two"`)
	// Listing order: one before two.
	assert.Less(t, strings.Index(out, "Post One"), strings.Index(out, "Post Two"))
	assert.Contains(t, out, `"@type":"WebSite"`)
}

func TestHomeWithoutFeatured(t *testing.T) {
	v := New(testCfg)

	var buf bytes.Buffer
	require.NoError(t, v.Home(nil, []inkpress.PostMeta{{Slug: "only", Title: "Only"}}).Render(context.Background(), &buf))
	out := buf.String()

	assert.NotContains(t, out, `class="featured"`)
	assert.Contains(t, out, "Only")
}

func TestHomeEscapesMetadata(t *testing.T) {
	v := New(testCfg)
	posts := []inkpress.PostMeta{{Slug: "x", Title: `<script>alert("t")</script>`}}

	var buf bytes.Buffer
	require.NoError(t, v.Home(nil, posts).Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "<script>alert")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestPostRendersBodyThroughMarkdown(t *testing.T) {
	v := New(testCfg)
	post := inkpress.ResolvedPost{
		Meta: inkpress.PostMeta{
			Slug:     "sum-check",
			Title:    "Introduction to the Sum-Check Protocol",
			Category: "Proof Systems",
			Date:     "2024-03-02",
		},
		Body: "### TL;DR\n\nA **short** protocol.",
	}

	var buf bytes.Buffer
	require.NoError(t, v.Post(post).Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, "<h1>Introduction to the Sum-Check Protocol</h1>")
	assert.Contains(t, out, "<h3")
	assert.Contains(t, out, "<strong>short</strong>")
	assert.Contains(t, out, `datetime="2024-03-02"`)
	assert.Contains(t, out, `"@type":"BlogPosting"`)
	assert.Contains(t, out, `href="/"`)
}

func TestNotFoundLinksBackToListing(t *testing.T) {
	v := New(testCfg)

	var buf bytes.Buffer
	require.NoError(t, v.NotFound().Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, "Post not found")
	assert.Contains(t, out, `href="/"`)
}

func TestServerError(t *testing.T) {
	v := New(testCfg)

	var buf bytes.Buffer
	require.NoError(t, v.ServerError().Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Something went wrong")
}

func TestBlogPostingJsonLD(t *testing.T) {
	meta := inkpress.PostMeta{Slug: "p", Title: "P", Excerpt: "e", Category: "Cat", Date: "2024-01-01"}
	got := BlogPostingJsonLD(testCfg, meta)

	assert.Contains(t, got, `"headline":"P"`)
	assert.Contains(t, got, `"keywords":"Cat"`)
	assert.Contains(t, got, `"datePublished":"2024-01-01"`)
	assert.Contains(t, got, `"url":"http://example.test/blog/p/"`)
}
