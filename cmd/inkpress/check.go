package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/calyptra/inkpress"
)

var (
	checkStaticDir  string
	checkContentDir string
)

func init() {
	checkCmd.Flags().StringVar(&checkStaticDir, "static-dir", "public", "directory for static assets")
	checkCmd.Flags().StringVar(&checkContentDir, "content-dir", "", "load content from a directory instead of the embedded tree")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalog, post bodies, and image assets",
	Long: `Check loads the content tables with the same fail-fast validation the
server runs at startup (unique slugs, at most one featured post, catalog and
bodies matching in both directions), then verifies that every catalog image
reference resolves to a decodable asset under the static directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var content fs.FS
		if checkContentDir != "" {
			content = os.DirFS(checkContentDir)
		} else {
			content = inkpress.DefaultContent()
		}

		lib, err := inkpress.LoadLibrary(content)
		if err != nil {
			return err
		}
		posts := lib.Catalog.Posts()
		fmt.Printf("Loaded %d posts, catalog and bodies consistent.\n\n", len(posts))

		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()

		broken := 0
		var rows [][]string
		reports := make(map[string]inkpress.AssetReport)
		for _, r := range inkpress.ValidateAssets(checkStaticDir, posts) {
			reports[r.Slug] = r
		}
		for _, p := range posts {
			featured := ""
			if p.Featured {
				featured = "yes"
			}
			status := dim("no image")
			if r, has := reports[p.Slug]; has {
				if r.OK() {
					status = ok(fmt.Sprintf("%dx%d", r.Width, r.Height))
				} else {
					status = bad(r.Err.Error())
					broken++
				}
			}
			rows = append(rows, []string{p.Slug, p.Category, featured, p.Image, status})
		}

		table := tablewriter.NewTable(os.Stdout)
		table.Header([]string{"Slug", "Category", "Featured", "Image", "Status"})
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if broken > 0 {
			return fmt.Errorf("%d image reference(s) failed validation", broken)
		}
		fmt.Println(ok("\nAll checks passed."))
		return nil
	},
}
