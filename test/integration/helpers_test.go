//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fortdoc-labs/fortdoc/entity"
	"github.com/fortdoc-labs/fortdoc/interchange"
)

// testEnv holds the isolated directories one flow test runs in.
type testEnv struct {
	ProjectDir   string // documentation project under test
	NeighbourDir string // external project publishing modules.json
	OutDir       string // resolved pages land here
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		ProjectDir:   t.TempDir(),
		NeighbourDir: t.TempDir(),
		OutDir:       t.TempDir(),
	}
}

// setupNeighbour builds a small documented project and publishes its
// interchange document into dir, the way a finished neighbour build would.
// Layout: module geometry holding variable pi and type circle, the type
// holding bound procedure area.
func setupNeighbour(t *testing.T, dir string) {
	t.Helper()

	project := entity.NewProject()

	geometry := entity.New(entity.KindModule, "geometry")
	if err := project.Add(geometry); err != nil {
		t.Fatalf("Add(geometry): %v", err)
	}

	pi := entity.New(entity.KindVariable, "pi")
	pi.VarType = "real"
	if err := geometry.AddChild(entity.RelVariables, pi); err != nil {
		t.Fatalf("AddChild(pi): %v", err)
	}

	circle := entity.New(entity.KindType, "circle")
	if err := geometry.AddChild(entity.RelTypes, circle); err != nil {
		t.Fatalf("AddChild(circle): %v", err)
	}

	area := entity.New(entity.KindBoundProcedure, "area")
	area.Generic = true
	if err := circle.AddChild(entity.RelBoundProcs, area); err != nil {
		t.Fatalf("AddChild(area): %v", err)
	}

	if err := interchange.Export(project, dir); err != nil {
		t.Fatalf("Export: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
}

func assertContains(t *testing.T, text, want string) {
	t.Helper()
	if !strings.Contains(text, want) {
		t.Errorf("output missing %q in:\n%s", want, text)
	}
}
