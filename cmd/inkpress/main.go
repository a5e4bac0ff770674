// Command inkpress serves and checks a static blog site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/calyptra/inkpress"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "inkpress",
	Short:         "A static blog presentation server built with Go, Echo, and templ",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; real deployments set the environment directly.
		_ = godotenv.Load()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inkpress version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkpress %s\n", version)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, checkCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// siteConfig builds the SiteConfig from the environment, with the same
// defaults the library applies.
func siteConfig() inkpress.SiteConfig {
	return inkpress.SiteConfig{
		Name:        inkpress.EnvOr("SITE_NAME", "Blog"),
		URL:         inkpress.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: inkpress.EnvOr("SITE_DESCRIPTION", ""),
		Author:      inkpress.EnvOr("SITE_AUTHOR", ""),
		Addr:        inkpress.EnvOr("LISTEN_ADDR", ":3000"),
	}
}
