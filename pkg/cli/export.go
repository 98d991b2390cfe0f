package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"intellecta-site/pkg/components"
	"intellecta-site/pkg/links"
	"intellecta-site/pkg/web"
)

type exportOptions struct {
	out    string
	apiURL string
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page and its assets into a directory for static hosting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.statuses.Close()
			if err := exportSite(a, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", opts.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&opts.apiURL, "api", "", "Base URL of a running server for enquiries and the hero stream")

	return cmd
}

// exportSite writes index.html and static/ under opts.out. Without an API URL
// the page needs no server: the script rotates the hero and builds both links
// in the browser, and the form's plain submit opens a mail draft.
func exportSite(a *app, opts *exportOptions) error {
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}

	data := a.handlers.PageData("", "")
	data.HeroStream = ""
	data.API = ""
	data.ContactAction = links.Mailto(a.cfg.Contact.Email, links.Subject, "")
	if base := strings.TrimRight(opts.apiURL, "/"); base != "" {
		data.HeroStream = base + "/hero/stream"
		data.API = base + "/api/enquiries"
		data.ContactAction = base + "/contact"
	}

	f, err := os.Create(filepath.Join(opts.out, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	if err := components.Page(data).Render(f); err != nil {
		f.Close()
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	return copyFS(web.StaticFS(), filepath.Join(opts.out, "static"))
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		b, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, b, 0o644)
	})
}
