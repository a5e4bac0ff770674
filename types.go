package inkpress

// PostMeta is a single catalog record describing one post. The slug is the
// stable key joining the catalog to the content table; everything else is
// display metadata consumed by the listing and post templates.
type PostMeta struct {
	Slug     string
	Title    string
	Excerpt  string
	Category string
	Image    string // opaque asset reference, resolved under the static dir
	URL      string // external mirror URL, may point off-site
	Featured bool
	Date     string // optional, YYYY-MM-DD; feeds RSS pubDate and sitemap lastmod
}

// ResolvedPost is the join of a catalog record with its markdown body,
// computed per request and never stored.
type ResolvedPost struct {
	Meta PostMeta
	Body string
}
