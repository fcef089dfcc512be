package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/fortdoc-labs/fortdoc/interchange"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Version prints the build information of this fortdoc binary along with
the interchange document name it exchanges with other projects. The
version number satisfies a manifest's min_version requirement when it is
equal or newer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := displayVersion(buildVersion)
		if versionShort {
			fmt.Println(version)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version":     version,
				"commit":      buildCommit,
				"date":        buildDate,
				"interchange": interchange.FileName,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("fortdoc version %s (commit: %s, built: %s)\n", version, buildCommit, buildDate)
		fmt.Printf("interchange document: %s\n", interchange.FileName)
		return nil
	},
}

// displayVersion canonicalizes a tagged build version: release tags carry a
// leading v and may omit the patch number, both of which semver parsing
// normalizes away. Untagged builds ("dev") print as injected.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return sv.String()
}
