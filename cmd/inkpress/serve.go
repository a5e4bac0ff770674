package main

import (
	"github.com/spf13/cobra"

	"github.com/calyptra/inkpress"
	"github.com/calyptra/inkpress/views"
)

var serveStaticDir string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	Long: `Serve loads the embedded catalog and post bodies, validates them,
and starts the HTTP server. Site branding comes from environment variables
(SITE_NAME, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR, LISTEN_ADDR).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := siteConfig()
		app := inkpress.New(cfg, views.Funcs(cfg), appOptions()...)
		return app.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "public", "directory for static assets")
}

func appOptions() []inkpress.Option {
	var opts []inkpress.Option
	if serveStaticDir != "" {
		opts = append(opts, inkpress.WithStaticDir(serveStaticDir))
	}
	return opts
}
