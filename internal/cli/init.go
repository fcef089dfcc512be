package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fortdoc-labs/fortdoc/internal/manifest"
)

var initName string

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (default: current directory name)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter project manifest",
	Long: `Init writes a fortdoc.yaml manifest into the current directory, ready
to be filled in with external sources and macro aliases. The manifest
path follows the --project flag.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(projectFile); err == nil {
			return fmt.Errorf("project already initialized: %s exists", projectFile)
		}

		name := initName
		if name == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			name = filepath.Base(cwd)
		}

		if err := manifest.Starter(name).Save(projectFile); err != nil {
			return err
		}
		fmt.Printf("Created %s for project %q\n", projectFile, name)
		fmt.Println("Add external sources and aliases, then run 'fortdoc resolve <pages>'.")
		return nil
	},
}
