package views

import "strings"

// pageMeta carries per-page metadata into the <head>.
type pageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JsonLD      string
}

// openPage writes the document head and shell up to the start of <main>.
func (v *Views) openPage(b *strings.Builder, meta pageMeta) {
	cfg := v.cfg
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	b.WriteString("<meta charset=\"utf-8\"/>")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	b.WriteString("<title>" + esc(meta.Title) + "</title>")
	if meta.Description != "" {
		b.WriteString("<meta name=\"description\" content=\"" + esc(meta.Description) + "\"/>")
	}
	if meta.URL != "" {
		b.WriteString("<link rel=\"canonical\" href=\"" + esc(meta.URL) + "\"/>")
		b.WriteString("<meta property=\"og:url\" content=\"" + esc(meta.URL) + "\"/>")
	}
	b.WriteString("<meta property=\"og:title\" content=\"" + esc(meta.Title) + "\"/>")
	if meta.Description != "" {
		b.WriteString("<meta property=\"og:description\" content=\"" + esc(meta.Description) + "\"/>")
	}
	if meta.OGType != "" {
		b.WriteString("<meta property=\"og:type\" content=\"" + esc(meta.OGType) + "\"/>")
	}
	b.WriteString("<meta property=\"og:site_name\" content=\"" + esc(cfg.Name) + "\"/>")
	b.WriteString("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\"/>")
	b.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + esc(cfg.Name) + "\" href=\"/feed.xml\"/>")
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
	if meta.JsonLD != "" {
		b.WriteString("<script type=\"application/ld+json\">" + meta.JsonLD + "</script>")
	}
	b.WriteString("</head><body>")
	b.WriteString("<header class=\"site-header\"><a href=\"/\" class=\"site-name\">" + esc(cfg.Name) + "</a></header>")
	b.WriteString("<main>")
}

// closePage writes the footer and closes the document.
func (v *Views) closePage(b *strings.Builder) {
	b.WriteString("</main>")
	b.WriteString("<footer class=\"site-footer\">")
	if v.cfg.Author != "" {
		b.WriteString("<span>" + esc(v.cfg.Author) + "</span> &middot; ")
	}
	b.WriteString("<a href=\"/feed.xml\">RSS</a>")
	b.WriteString("</footer>")
	b.WriteString("</body></html>")
}
