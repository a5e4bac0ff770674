package inkpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRejectsDuplicateSlugs(t *testing.T) {
	_, err := NewCatalog([]PostMeta{
		{Slug: "a", Title: "A"},
		{Slug: "a", Title: "A again"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate slug "a"`)
}

func TestNewCatalogRejectsMultipleFeatured(t *testing.T) {
	_, err := NewCatalog([]PostMeta{
		{Slug: "a", Title: "A", Featured: true},
		{Slug: "b", Title: "B", Featured: true},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple featured")
}

func TestNewCatalogRejectsEmptySlug(t *testing.T) {
	_, err := NewCatalog([]PostMeta{{Title: "Untitled"}})
	require.Error(t, err)
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog([]PostMeta{
		{Slug: "a", Title: "A"},
		{Slug: "b", Title: "B"},
	})
	require.NoError(t, err)

	got, ok := c.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "B", got.Title)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestCatalogPostsPreserveOrder(t *testing.T) {
	posts := []PostMeta{
		{Slug: "c", Title: "C"},
		{Slug: "a", Title: "A"},
		{Slug: "b", Title: "B"},
	}
	c, err := NewCatalog(posts)
	require.NoError(t, err)

	got := c.Posts()
	require.Len(t, got, 3)
	for i := range posts {
		assert.Equal(t, posts[i].Slug, got[i].Slug)
	}
}

func TestSplitFeatured(t *testing.T) {
	a := PostMeta{Slug: "a"}
	b := PostMeta{Slug: "b", Featured: true}
	c := PostMeta{Slug: "c"}

	featured, rest := SplitFeatured([]PostMeta{a, b, c})
	require.NotNil(t, featured)
	assert.Equal(t, "b", featured.Slug)
	require.Len(t, rest, 2)
	assert.Equal(t, "a", rest[0].Slug)
	assert.Equal(t, "c", rest[1].Slug)
}

func TestSplitFeaturedNone(t *testing.T) {
	posts := []PostMeta{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}
	featured, rest := SplitFeatured(posts)
	assert.Nil(t, featured)
	require.Len(t, rest, 3)
	for i := range posts {
		assert.Equal(t, posts[i].Slug, rest[i].Slug)
	}
}

func TestSplitFeaturedFirstMatchWins(t *testing.T) {
	posts := []PostMeta{
		{Slug: "a", Featured: true},
		{Slug: "b", Featured: true},
	}
	featured, rest := SplitFeatured(posts)
	require.NotNil(t, featured)
	assert.Equal(t, "a", featured.Slug)
	require.Len(t, rest, 1)
	assert.Equal(t, "b", rest[0].Slug)
}

func TestSplitFeaturedEmpty(t *testing.T) {
	featured, rest := SplitFeatured(nil)
	assert.Nil(t, featured)
	assert.Empty(t, rest)
}
