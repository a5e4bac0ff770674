package inkpress

import "fmt"

// Catalog is the ordered, immutable set of post metadata records. Insertion
// order is display order. Built once at startup and shared read-only by every
// request handler.
type Catalog struct {
	posts []PostMeta
	index map[string]int
}

// NewCatalog builds a catalog from records, preserving their order. It fails
// on duplicate slugs and on more than one record marked featured.
func NewCatalog(posts []PostMeta) (*Catalog, error) {
	index := make(map[string]int, len(posts))
	featured := ""
	for i, p := range posts {
		if p.Slug == "" {
			return nil, fmt.Errorf("catalog: record %d has an empty slug", i)
		}
		if _, ok := index[p.Slug]; ok {
			return nil, fmt.Errorf("catalog: duplicate slug %q", p.Slug)
		}
		if p.Featured {
			if featured != "" {
				return nil, fmt.Errorf("catalog: multiple featured posts: %q and %q", featured, p.Slug)
			}
			featured = p.Slug
		}
		index[p.Slug] = i
	}
	return &Catalog{posts: append([]PostMeta(nil), posts...), index: index}, nil
}

// Posts returns all records in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) Posts() []PostMeta {
	return c.posts
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Lookup returns the record for slug, or false if no record exists.
func (c *Catalog) Lookup(slug string) (PostMeta, bool) {
	i, ok := c.index[slug]
	if !ok {
		return PostMeta{}, false
	}
	return c.posts[i], true
}

// SplitFeatured partitions posts into the featured record, if any, and the
// remaining records in their original order. If several records are marked
// featured only the first one wins; the rest stay in the remainder. Catalogs
// built with NewCatalog never contain more than one, but the partition stays
// total for arbitrary input.
func SplitFeatured(posts []PostMeta) (featured *PostMeta, rest []PostMeta) {
	for i := range posts {
		if featured == nil && posts[i].Featured {
			f := posts[i]
			featured = &f
			continue
		}
		rest = append(rest, posts[i])
	}
	return featured, rest
}
