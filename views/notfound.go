package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// NotFound renders the unified fallback page for any unresolved post or path,
// with a way back to the listing.
func (v *Views) NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		v.openPage(&b, pageMeta{
			Title:  "Not found | " + v.cfg.Name,
			OGType: "website",
		})
		b.WriteString("<section class=\"error-page\">")
		b.WriteString("<h1>Post not found</h1>")
		b.WriteString("<p>The post you are looking for does not exist or has moved.</p>")
		b.WriteString("<p><a href=\"/\">&larr; Back to all posts</a></p>")
		b.WriteString("</section>")
		v.closePage(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ServerError renders the 5xx fallback page.
func (v *Views) ServerError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		v.openPage(&b, pageMeta{
			Title:  "Something went wrong | " + v.cfg.Name,
			OGType: "website",
		})
		b.WriteString("<section class=\"error-page\">")
		b.WriteString("<h1>Something went wrong</h1>")
		b.WriteString("<p>Try again in a moment, or head back to the front page.</p>")
		b.WriteString("<p><a href=\"/\">&larr; Back to all posts</a></p>")
		b.WriteString("</section>")
		v.closePage(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
