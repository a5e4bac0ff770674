// Package views holds the default templ components for an inkpress site.
// Components are plain templ.ComponentFuncs that build escaped HTML, in the
// same style the markdown package uses; there is no template language layer.
package views

import (
	"github.com/calyptra/inkpress"
)

// Views renders the default site templates against a fixed SiteConfig.
type Views struct {
	cfg inkpress.SiteConfig
}

// New creates the default view set for cfg.
func New(cfg inkpress.SiteConfig) *Views {
	return &Views{cfg: cfg}
}

// Funcs returns the ViewFuncs wiring for inkpress.New.
func Funcs(cfg inkpress.SiteConfig) inkpress.ViewFuncs {
	v := New(cfg)
	return inkpress.ViewFuncs{
		Home:        v.Home,
		Post:        v.Post,
		NotFound:    v.NotFound,
		ServerError: v.ServerError,
	}
}
