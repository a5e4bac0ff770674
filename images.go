package inkpress

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp"
)

// AssetReport is the result of validating one catalog image reference.
type AssetReport struct {
	Slug   string
	Image  string
	Width  int
	Height int
	Err    error
}

// OK reports whether the asset resolved to a decodable image.
func (r AssetReport) OK() bool {
	return r.Err == nil
}

// ValidateAssets resolves every catalog image reference against staticDir and
// checks that it decodes as an image (PNG, JPEG, GIF, or WebP). Catalog
// records without an image reference are skipped. Image handles are otherwise
// opaque to the core; this exists so a broken content drop is caught before
// deploy rather than as a broken card in production.
func ValidateAssets(staticDir string, posts []PostMeta) []AssetReport {
	var reports []AssetReport
	for _, p := range posts {
		if p.Image == "" {
			continue
		}
		report := AssetReport{Slug: p.Slug, Image: p.Image}
		report.Width, report.Height, report.Err = decodeSize(filepath.Join(staticDir, filepath.FromSlash(p.Image)))
		reports = append(reports, report)
	}
	return reports
}

func decodeSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return cfg.Width, cfg.Height, nil
}
