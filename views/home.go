package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/calyptra/inkpress"
)

// Home renders the listing page: the featured post as a hero card, if there is
// one, followed by the remaining posts as a grid in catalog order.
func (v *Views) Home(featured *inkpress.PostMeta, posts []inkpress.PostMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		v.openPage(&b, pageMeta{
			Title:       v.cfg.Name,
			Description: v.cfg.Description,
			URL:         buildURL(v.cfg.URL),
			OGType:      "website",
			JsonLD:      WebsiteJsonLD(v.cfg),
		})

		if featured != nil {
			b.WriteString("<section class=\"featured\">")
			v.writeCard(&b, *featured, true)
			b.WriteString("</section>")
		}

		b.WriteString("<section class=\"post-grid\">")
		for _, p := range posts {
			v.writeCard(&b, p, false)
		}
		b.WriteString("</section>")

		v.closePage(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func (v *Views) writeCard(b *strings.Builder, p inkpress.PostMeta, hero bool) {
	class := "post-card"
	if hero {
		class = "post-card post-card-featured"
	}
	link := "/blog/" + esc(p.Slug) + "/"
	b.WriteString("<article class=\"" + class + "\">")
	if p.Image != "" {
		b.WriteString("<a href=\"" + link + "\"><img src=\"/public/" + esc(p.Image) + "\" alt=\"" + esc(p.Title) + "\" loading=\"lazy\"/></a>")
	}
	if p.Category != "" {
		b.WriteString("<span class=\"post-category\">" + esc(p.Category) + "</span>")
	}
	b.WriteString("<h2><a href=\"" + link + "\">" + esc(p.Title) + "</a></h2>")
	if p.Excerpt != "" {
		b.WriteString("<p class=\"post-excerpt\">" + esc(p.Excerpt) + "</p>")
	}
	if p.URL != "" {
		b.WriteString("<a class=\"post-mirror\" href=\"" + esc(p.URL) + "\" target=\"_blank\" rel=\"noopener noreferrer\">Read on mirror</a>")
	}
	b.WriteString("</article>")
}
