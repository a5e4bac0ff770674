package inkpress

import (
	"embed"
	"io/fs"
)

// defaultContent holds the site's shipped content: catalog.toml plus the
// markdown bodies under posts/.
//
//go:embed content
var defaultContent embed.FS

// DefaultContent returns the embedded content tree rooted at the directory
// LoadLibrary expects.
func DefaultContent() fs.FS {
	sub, err := fs.Sub(defaultContent, "content")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
