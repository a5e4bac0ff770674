package inkpress

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func TestValidateAssets(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "images", "ok.png"), 640, 480)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "junk.png"), []byte("not an image"), 0o644))

	posts := []PostMeta{
		{Slug: "ok", Image: "images/ok.png"},
		{Slug: "junk", Image: "images/junk.png"},
		{Slug: "gone", Image: "images/gone.png"},
		{Slug: "none"}, // no image reference, skipped
	}

	reports := ValidateAssets(dir, posts)
	require.Len(t, reports, 3)

	bySlug := map[string]AssetReport{}
	for _, r := range reports {
		bySlug[r.Slug] = r
	}

	ok := bySlug["ok"]
	assert.True(t, ok.OK())
	assert.Equal(t, 640, ok.Width)
	assert.Equal(t, 480, ok.Height)

	assert.False(t, bySlug["junk"].OK())
	assert.False(t, bySlug["gone"].OK())
}

func TestValidateAssetsEmptyCatalog(t *testing.T) {
	assert.Empty(t, ValidateAssets(t.TempDir(), nil))
}
