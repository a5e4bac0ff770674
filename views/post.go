package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/calyptra/inkpress"
	"github.com/calyptra/inkpress/markdown"
)

// Post renders a single resolved post: metadata header, then the markdown
// body through the goldmark component.
func (v *Views) Post(post inkpress.ResolvedPost) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		meta := post.Meta

		var b strings.Builder
		v.openPage(&b, pageMeta{
			Title:       meta.Title + " | " + v.cfg.Name,
			Description: meta.Excerpt,
			URL:         buildURL(v.cfg.URL, "blog", meta.Slug),
			OGType:      "article",
			JsonLD:      BlogPostingJsonLD(v.cfg, meta),
		})

		b.WriteString("<article class=\"post\">")
		b.WriteString("<header class=\"post-header\">")
		if meta.Category != "" {
			b.WriteString("<span class=\"post-category\">" + esc(meta.Category) + "</span>")
		}
		b.WriteString("<h1>" + esc(meta.Title) + "</h1>")
		if meta.Date != "" {
			b.WriteString("<time datetime=\"" + esc(meta.Date) + "\">" + esc(meta.Date) + "</time>")
		}
		b.WriteString("</header>")
		b.WriteString("<div class=\"post-body\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := markdown.Markdown(post.Body).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		b.WriteString("</div>")
		if meta.URL != "" {
			b.WriteString("<p class=\"post-mirror\"><a href=\"" + esc(meta.URL) + "\" target=\"_blank\" rel=\"noopener noreferrer\">Also published here</a></p>")
		}
		b.WriteString("<p class=\"back-link\"><a href=\"/\">&larr; All posts</a></p>")
		b.WriteString("</article>")
		v.closePage(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
