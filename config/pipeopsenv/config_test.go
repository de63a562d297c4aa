package pipeopsenv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSearchForRoot(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "project")
	deepDir := filepath.Join(projectDir, "sub", "deep")
	if err := os.MkdirAll(deepDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(projectDir, DirName), 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		startDir string
		want     string
	}{
		{"from root", projectDir, projectDir},
		{"from deep subdirectory", deepDir, projectDir},
		{"not found", tmpDir, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := searchForRoot(tt.startDir)
			if err != nil {
				t.Fatalf("searchForRoot() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("searchForRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	_, err := Resolve("", "", t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolve_LoadsConfig(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, DirName)
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `version: 1
store:
  url: sqlite:$PIPEOPS_DIR/pipeops.db
logging:
  format: json
  level: DEBUG
session:
  root: /mnt/projects
tools:
  ffmpeg: $PIPEOPS_ROOT/bin/ffmpeg
studio:
  templates: $PIPEOPS_ROOT/studio
  apiUser: pipeline
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env, err := Resolve("", "", root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if env.Store.URL != "sqlite:"+dir+"/pipeops.db" {
		t.Errorf("store url = %q", env.Store.URL)
	}
	if env.Logging.Format != "json" || env.Logging.Level != "DEBUG" {
		t.Errorf("logging = %+v", env.Logging)
	}
	if env.Tools.FFmpeg != root+"/bin/ffmpeg" {
		t.Errorf("ffmpeg = %q", env.Tools.FFmpeg)
	}
	if env.Studio.APIUser != "pipeline" || env.Studio.Templates != root+"/studio" {
		t.Errorf("studio = %+v", env.Studio)
	}
	if env.Session.Root != "/mnt/projects" {
		t.Errorf("session root = %q", env.Session.Root)
	}
	if env.LogDir() != filepath.Join(dir, "logs") {
		t.Errorf("LogDir() = %q", env.LogDir())
	}
	if env.SessionFile() != filepath.Join(dir, SessionFileName) {
		t.Errorf("SessionFile() = %q", env.SessionFile())
	}
}

func TestResolve_RootNotDirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(f, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(f, "", ""); err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("expected not a directory error, got %v", err)
	}
}

func TestInitialConfigYAML(t *testing.T) {
	b, err := InitialConfigYAML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "file:$PIPEOPS_ROOT/project.yml") {
		t.Errorf("unexpected initial config:\n%s", b)
	}
}
