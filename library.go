package inkpress

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	catalogFile = "catalog.toml"
	postsDir    = "posts"
)

// Library owns the two static tables the whole site runs off: the catalog of
// post metadata and the slug-to-body content table.
type Library struct {
	Catalog *Catalog
	Content *ContentTable
}

// catalogRecord is the on-disk shape of one catalog entry in catalog.toml.
type catalogRecord struct {
	Slug     string `toml:"slug"`
	Title    string `toml:"title"`
	Excerpt  string `toml:"excerpt"`
	Category string `toml:"category"`
	Image    string `toml:"image"`
	URL      string `toml:"url"`
	Featured bool   `toml:"featured"`
	Date     string `toml:"date"`
}

type catalogDocument struct {
	Posts []catalogRecord `toml:"posts"`
}

// LoadLibrary reads catalog.toml and the posts/ directory from fsys and builds
// the library. The catalog and the bodies are edited independently, so the
// join is validated here: a catalog record without a body, or a body without a
// catalog record, aborts the load instead of degrading to a request-time 404.
func LoadLibrary(fsys fs.FS) (*Library, error) {
	raw, err := fs.ReadFile(fsys, catalogFile)
	if err != nil {
		return nil, fmt.Errorf("inkpress: read %s: %w", catalogFile, err)
	}
	var doc catalogDocument
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("inkpress: parse %s: %w", catalogFile, err)
	}

	posts := make([]PostMeta, 0, len(doc.Posts))
	for i, rec := range doc.Posts {
		if strings.TrimSpace(rec.Title) == "" {
			return nil, fmt.Errorf("inkpress: catalog record %d (%q) has no title", i, rec.Slug)
		}
		if rec.Date != "" {
			if _, err := time.Parse("2006-01-02", rec.Date); err != nil {
				return nil, fmt.Errorf("inkpress: catalog record %q: bad date %q, want YYYY-MM-DD", rec.Slug, rec.Date)
			}
		}
		posts = append(posts, PostMeta{
			Slug:     rec.Slug,
			Title:    rec.Title,
			Excerpt:  rec.Excerpt,
			Category: rec.Category,
			Image:    rec.Image,
			URL:      rec.URL,
			Featured: rec.Featured,
			Date:     rec.Date,
		})
	}

	catalog, err := NewCatalog(posts)
	if err != nil {
		return nil, fmt.Errorf("inkpress: %w", err)
	}

	bodies, err := loadBodies(fsys)
	if err != nil {
		return nil, err
	}
	content := NewContentTable(bodies)

	if err := validateJoin(catalog, content); err != nil {
		return nil, err
	}
	return &Library{Catalog: catalog, Content: content}, nil
}

// loadBodies reads every .md file under posts/; the file stem is the slug.
func loadBodies(fsys fs.FS) (map[string]string, error) {
	entries, err := fs.ReadDir(fsys, postsDir)
	if err != nil {
		return nil, fmt.Errorf("inkpress: read %s/: %w", postsDir, err)
	}
	bodies := make(map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(postsDir, name))
		if err != nil {
			return nil, fmt.Errorf("inkpress: read %s: %w", name, err)
		}
		slug := strings.TrimSuffix(name, ".md")
		bodies[slug] = string(raw)
	}
	return bodies, nil
}

// validateJoin checks the slug join in both directions and reports every
// mismatch at once, so a broken content drop fails loudly at startup.
func validateJoin(catalog *Catalog, content *ContentTable) error {
	var missing, orphaned []string
	for _, p := range catalog.Posts() {
		if _, ok := content.Lookup(p.Slug); !ok {
			missing = append(missing, p.Slug)
		}
	}
	for _, slug := range content.Slugs() {
		if _, ok := catalog.Lookup(slug); !ok {
			orphaned = append(orphaned, slug)
		}
	}
	if len(missing) == 0 && len(orphaned) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(orphaned)
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, fmt.Sprintf("catalog entries without a body: %s", strings.Join(missing, ", ")))
	}
	if len(orphaned) > 0 {
		parts = append(parts, fmt.Sprintf("bodies without a catalog entry: %s", strings.Join(orphaned, ", ")))
	}
	return fmt.Errorf("inkpress: catalog/content mismatch: %s", strings.Join(parts, "; "))
}

// Resolver returns a resolver over the library's tables.
func (l *Library) Resolver() *Resolver {
	return NewResolver(l.Catalog, l.Content)
}
