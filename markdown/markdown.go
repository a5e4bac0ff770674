// Package markdown renders post bodies to sanitized HTML as a templ component.
//
// The heavy lifting is goldmark with the GFM table extension; the output is
// passed through a bluemonday policy so authored content can never smuggle
// script into a page.
package markdown

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Post bodies are first-party content; nofollow is for untrusted UGC.
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("class").OnElements("code", "pre")
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("align").OnElements("th", "td")
	return p
}

// Markdown returns a templ.Component that renders md as sanitized HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Render(md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}

// Render converts md to sanitized HTML.
func Render(md string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
