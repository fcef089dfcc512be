package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fortdoc-labs/fortdoc/interchange"
	"github.com/fortdoc-labs/fortdoc/internal/manifest"
)

var validateInterchange bool

func init() {
	validateCmd.Flags().BoolVar(&validateInterchange, "interchange", false,
		"Validate a modules.json interchange document instead of a manifest")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a project manifest or interchange document",
	Long: `Validate checks a fortdoc.yaml project manifest against its schema and
reports every violation. With --interchange it checks a modules.json
document instead. The default path is the --project manifest, or
modules.json in the current directory with --interchange.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateInterchange {
			path := interchange.FileName
			if len(args) == 1 {
				path = args[0]
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			if err := interchange.ValidateDocument(data); err != nil {
				return err
			}
			fmt.Printf("%s is a valid interchange document\n", path)
			return nil
		}

		path := projectFile
		if len(args) == 1 {
			path = args[0]
		}
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(os.Stderr, "  %s\n", issue)
			}
			return fmt.Errorf("%s failed validation with %d issue(s)", path, len(result.Issues))
		}
		fmt.Printf("%s is a valid project manifest\n", path)
		return nil
	},
}
