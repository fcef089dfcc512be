package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Parse reads and parses a fortdoc.yaml file. Defaults are filled in and the
// manifest remembers its own directory so relative paths can be resolved
// later. Parse does not validate; call Validate or ValidateFile for that.
func Parse(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving manifest path %s: %w", path, err)
	}
	m.dir = filepath.Dir(abs)
	m.applyDefaults()
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
