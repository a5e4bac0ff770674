package inkpress

import "errors"

// ErrPostNotFound is returned by Resolve for any slug that does not yield a
// complete post: unknown slug, missing catalog record, or missing body. The
// three cases are deliberately indistinguishable to callers; the handler
// renders the same fallback view for all of them.
var ErrPostNotFound = errors.New("inkpress: post not found")

// Resolver joins the catalog and the content table by slug.
type Resolver struct {
	catalog *Catalog
	content *ContentTable
}

// NewResolver creates a resolver over the given tables.
func NewResolver(catalog *Catalog, content *ContentTable) *Resolver {
	return &Resolver{catalog: catalog, content: content}
}

// Resolve returns the full render data for slug. The slug typically comes
// straight from a URL path segment and is treated as untrusted: any value that
// does not match both tables yields ErrPostNotFound, never a panic or a
// distinct error.
func (r *Resolver) Resolve(slug string) (ResolvedPost, error) {
	meta, ok := r.catalog.Lookup(slug)
	if !ok {
		return ResolvedPost{}, ErrPostNotFound
	}
	body, ok := r.content.Lookup(slug)
	if !ok {
		return ResolvedPost{}, ErrPostNotFound
	}
	return ResolvedPost{Meta: meta, Body: body}, nil
}
