package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fortdoc-labs/fortdoc/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	projectFile string
	verbose     bool
)

// logger carries diagnostics for every command; resolution and import
// warnings flow through prefixed children of it.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "fortdoc"})

var rootCmd = &cobra.Command{
	Use:   "fortdoc",
	Short: "Cross-reference engine for Fortran project documentation",
	Long: `fortdoc resolves [[name]] cross-reference markup in documentation text
against a project index, substitutes |macro| aliases, and federates with
other projects by exchanging modules.json interchange documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level, err := log.ParseLevel(config.Verbosity())
		if err != nil {
			level = log.InfoLevel
		}
		if verbose {
			level = log.DebugLevel
		}
		logger.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectFile, "project", "p", "fortdoc.yaml",
		"Path to the project manifest")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug diagnostics")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
