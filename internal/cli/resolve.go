package cli

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fortdoc-labs/fortdoc/entity"
	"github.com/fortdoc-labs/fortdoc/interchange"
	"github.com/fortdoc-labs/fortdoc/internal/config"
	"github.com/fortdoc-labs/fortdoc/internal/manifest"
	"github.com/fortdoc-labs/fortdoc/links"
	"github.com/fortdoc-labs/fortdoc/macro"
)

var (
	resolveOut    string
	resolveStdout bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveOut, "out", "o", "",
		"Directory for resolved pages (default: the manifest's output directory)")
	resolveCmd.Flags().BoolVar(&resolveStdout, "stdout", false,
		"Write resolved pages to standard output instead of files")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [pages...]",
	Short: "Substitute macros and cross-reference links in documentation pages",
	Long: `Resolve loads the project manifest, imports every configured external
source, then rewrites each page: |macro| aliases first, [[name]]
cross-reference markup second. Unresolvable links degrade with a warning
and never fail the run. Resolved pages keep their file names.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Parse(projectFile)
		if err != nil {
			return err
		}
		if err := m.CheckMinVersion(buildVersion); err != nil {
			return err
		}

		reg := macro.NewRegistry()
		if err := m.RegisterMacros(reg); err != nil {
			return err
		}

		project := entity.NewProject()
		importer := interchange.NewImporter(project, reg,
			interchange.WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout()}),
			interchange.WithLogger(logger.WithPrefix("interchange")),
		)
		imported, err := importer.ImportAll(m.External)
		if err != nil {
			return err
		}
		if len(m.External) > 0 {
			logger.Info("imported external entities", "count", imported, "sources", len(m.External))
		}

		resolver := links.NewResolver(project, logger.WithPrefix("links"))

		outDir := resolveOut
		if outDir == "" {
			outDir = config.Get(config.KeyOutputDir)
		}
		if outDir == "" {
			outDir = m.OutputPath()
		}
		if !resolveStdout {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory %s: %w", outDir, err)
			}
		}

		for _, page := range args {
			data, err := os.ReadFile(page)
			if err != nil {
				return fmt.Errorf("reading page %s: %w", page, err)
			}
			text := renderPage(string(data), reg, resolver)
			if resolveStdout {
				fmt.Print(text)
				continue
			}
			dest := filepath.Join(outDir, filepath.Base(page))
			if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing resolved page: %w", err)
			}
			logger.Debug("resolved page", "page", page, "dest", dest)
		}
		return nil
	},
}

// renderPage applies macro substitution and then link resolution. Macros run
// first so aliases can appear inside link markup and page text alike.
func renderPage(text string, reg *macro.Registry, resolver *links.Resolver) string {
	return resolver.Substitute(reg.Substitute(text))
}
