package inkpress

import (
	"io/fs"
	"log"
	"os"
)

// SiteConfig holds all configuration for an inkpress site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr string // Listen address (default ":3000")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithContent overrides the embedded content tree. The filesystem must hold
// catalog.toml and a posts/ directory.
func WithContent(fsys fs.FS) Option {
	return func(a *App) {
		a.content = fsys
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("inkpress: required environment variable %s is not set", key)
	}
	return v
}
