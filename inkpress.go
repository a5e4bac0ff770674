// Package inkpress is a static blog presentation server built with Go, Echo,
// and templ. It serves a listing page and per-post pages from two immutable
// in-memory tables: an ordered catalog of post metadata and a slug-to-body
// content table, joined at render time.
//
// Users provide their own templ components via the ViewFuncs struct; inkpress
// owns the tables, the resolver, the middleware, and the feed/sitemap surface.
package inkpress

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds the templ components the framework calls when rendering
// pages. This is the inversion-of-control point that keeps templates out of
// the core.
type ViewFuncs struct {
	Home        func(featured *PostMeta, posts []PostMeta) templ.Component
	Post        func(post ResolvedPost) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central inkpress application. It wires together the library,
// resolver, handlers, middleware, and user-provided templates.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Library  *Library
	Resolver *Resolver
	Views    ViewFuncs

	content   fs.FS
	staticDir string
}

// New creates a new inkpress App with the given configuration and views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		content:   DefaultContent(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Load builds the library from the configured content tree and validates it.
// Start calls this; the check CLI command calls it directly.
func (a *App) Load() error {
	lib, err := LoadLibrary(a.content)
	if err != nil {
		return err
	}
	a.Library = lib
	a.Resolver = lib.Resolver()
	return nil
}

// Start loads the content tables, sets up middleware and routes, and starts
// the server. It blocks until the server stops.
func (a *App) Start() error {
	if a.Views.Home == nil || a.Views.Post == nil || a.Views.NotFound == nil {
		return fmt.Errorf("inkpress: Home, Post, and NotFound views are required")
	}

	if err := a.Load(); err != nil {
		return err
	}

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)
}
