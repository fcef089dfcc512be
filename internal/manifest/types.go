package manifest

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the project file looked for when no path is given.
const DefaultFileName = "fortdoc.yaml"

// DefaultOutputDir is where generated documentation lands unless the
// manifest says otherwise.
const DefaultOutputDir = "doc"

// Manifest is a parsed fortdoc.yaml project file.
type Manifest struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// BaseURL is the address the published documentation will live at.
	// The built-in |url|, |media| and |page| macros derive from it.
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	OutputDir string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	MediaDir  string `yaml:"media_dir,omitempty" json:"media_dir,omitempty"`

	// MinVersion is the oldest fortdoc release this project builds with.
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`

	// External lists "name = location" definitions of other projects whose
	// interchange documents should be imported before link resolution.
	External []string `yaml:"external,omitempty" json:"external,omitempty"`

	// Aliases lists "key = value" macro definitions usable as |key| in
	// documentation text.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`

	dir string // directory the manifest was read from
}

// Dir returns the directory containing the manifest file, the base for its
// relative paths.
func (m *Manifest) Dir() string {
	return m.dir
}

// OutputPath returns the absolute output directory, resolving the manifest's
// output_dir against its own location.
func (m *Manifest) OutputPath() string {
	return NormalizePath(m.dir, m.OutputDir)
}

// MediaPath returns the absolute media directory, or "" when the project has
// none.
func (m *Manifest) MediaPath() string {
	if m.MediaDir == "" {
		return ""
	}
	return NormalizePath(m.dir, m.MediaDir)
}

func (m *Manifest) applyDefaults() {
	if m.OutputDir == "" {
		m.OutputDir = DefaultOutputDir
	}
}

// NormalizePath expands environment variables in p and resolves it against
// base when relative.
func NormalizePath(base, p string) string {
	p = os.ExpandEnv(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
