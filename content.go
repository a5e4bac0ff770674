package inkpress

// ContentTable maps post slugs to long-form markdown bodies. Like the catalog
// it is populated once at startup and read-only afterwards.
type ContentTable struct {
	bodies map[string]string
}

// NewContentTable builds a content table from a slug-to-body map.
func NewContentTable(bodies map[string]string) *ContentTable {
	copied := make(map[string]string, len(bodies))
	for slug, body := range bodies {
		copied[slug] = body
	}
	return &ContentTable{bodies: copied}
}

// Lookup returns the body stored for slug, or false if none exists.
func (t *ContentTable) Lookup(slug string) (string, bool) {
	body, ok := t.bodies[slug]
	return body, ok
}

// Slugs returns every key in the table, in no particular order.
func (t *ContentTable) Slugs() []string {
	slugs := make([]string, 0, len(t.bodies))
	for slug := range t.bodies {
		slugs = append(slugs, slug)
	}
	return slugs
}
