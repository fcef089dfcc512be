package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckMinVersion verifies that the running release satisfies the manifest's
// min_version. Development builds ("dev" or empty) skip the comparison so a
// source checkout can always build any project. A min_version that does not
// parse is a manifest error regardless.
func (m *Manifest) CheckMinVersion(current string) error {
	if m.MinVersion == "" {
		return nil
	}
	required, err := semver.NewVersion(strings.TrimPrefix(m.MinVersion, "v"))
	if err != nil {
		return fmt.Errorf("invalid min_version %q: %w", m.MinVersion, err)
	}
	if current == "" || current == "dev" {
		return nil
	}
	running, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return fmt.Errorf("invalid running version %q: %w", current, err)
	}
	if running.LessThan(required) {
		return fmt.Errorf("project requires fortdoc %s or newer, this is %s",
			m.MinVersion, current)
	}
	return nil
}
