package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Starter returns a manifest pre-filled with the defaults a new project
// starts from.
func Starter(name string) *Manifest {
	return &Manifest{
		Name:      name,
		Version:   "0.1.0",
		OutputDir: DefaultOutputDir,
	}
}

// Save writes the manifest to path as YAML.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
