package manifest

import (
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse_AllFields(t *testing.T) {
	m, err := Parse(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.Name != "flap" {
		t.Errorf("Name = %q, want %q", m.Name, "flap")
	}
	if m.Version != "1.4.0" {
		t.Errorf("Version = %q, want %q", m.Version, "1.4.0")
	}
	if m.BaseURL != "https://example.com/flap" {
		t.Errorf("BaseURL = %q", m.BaseURL)
	}
	if m.OutputDir != "build/doc" {
		t.Errorf("OutputDir = %q, want %q", m.OutputDir, "build/doc")
	}
	if m.MediaDir != "media" {
		t.Errorf("MediaDir = %q, want %q", m.MediaDir, "media")
	}
	if m.MinVersion != "0.9.0" {
		t.Errorf("MinVersion = %q, want %q", m.MinVersion, "0.9.0")
	}
	if len(m.External) != 2 {
		t.Errorf("External len = %d, want 2", len(m.External))
	}
	if len(m.Aliases) != 2 {
		t.Errorf("Aliases len = %d, want 2", len(m.Aliases))
	}
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse(testPath("minimal.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if m.Name != "tiny" {
		t.Errorf("Name = %q, want %q", m.Name, "tiny")
	}
	if m.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want default %q", m.OutputDir, DefaultOutputDir)
	}
	if m.MediaPath() != "" {
		t.Errorf("MediaPath = %q, want empty when no media_dir set", m.MediaPath())
	}
}

func TestParse_ResolvesPathsAgainstManifestDir(t *testing.T) {
	m, err := Parse(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	absTestdata, err := filepath.Abs(testdataDir)
	if err != nil {
		t.Fatal(err)
	}
	if m.Dir() != absTestdata {
		t.Errorf("Dir() = %q, want %q", m.Dir(), absTestdata)
	}
	if want := filepath.Join(absTestdata, "build/doc"); m.OutputPath() != want {
		t.Errorf("OutputPath() = %q, want %q", m.OutputPath(), want)
	}
	if want := filepath.Join(absTestdata, "media"); m.MediaPath() != want {
		t.Errorf("MediaPath() = %q, want %q", m.MediaPath(), want)
	}
}

func TestParse_FileNotFound(t *testing.T) {
	_, err := Parse(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestNormalizePath(t *testing.T) {
	t.Setenv("FORTDOC_TEST_ROOT", "/srv/projects")

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{
			name: "relative resolves against base",
			base: "/home/user/project",
			path: "doc",
			want: "/home/user/project/doc",
		},
		{
			name: "absolute kept",
			base: "/home/user/project",
			path: "/var/doc",
			want: "/var/doc",
		},
		{
			name: "environment variables expand",
			base: "/home/user/project",
			path: "$FORTDOC_TEST_ROOT/doc",
			want: "/srv/projects/doc",
		},
		{
			name: "cleans redundant segments",
			base: "/home/user/project",
			path: "a/./b/../doc",
			want: "/home/user/project/a/doc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.base, tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}
