package pipeopscfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProject = `
version: v1
project:
  name: demo
  code: dm
  root: /mnt/projects
  template:
    work: "{root}/{project}/{silo}/{asset}/work/{task}/{app}"
  apps:
    - name: aftereffects_2024
      label: After Effects 2024
assets:
  - name: sh010
    silo: film
    tasks: [comp, anim]
    versions:
      - name: 1
        representations:
          - id: rep-sh010-v1-exr
            name: exr
            ext: exr
            files: [sh010.0001.exr, sh010.0002.exr]
      - name: 2
        representations:
          - id: rep-sh010-v2-exr
            name: exr
            ext: exr
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp yaml: %v", err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	cfg, err := Load(writeFile(t, sampleProject))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Project.Name != "demo" {
		t.Errorf("expected project demo, got %s", cfg.Project.Name)
	}
	if got := cfg.Project.Template.Work; got != "{root}/{project}/{silo}/{asset}/work/{task}/{app}" {
		t.Errorf("unexpected work template %q", got)
	}
	if len(cfg.Assets) != 1 || len(cfg.Assets[0].Versions) != 2 {
		t.Fatalf("unexpected assets: %+v", cfg.Assets)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeFile(t, "project: [unterminated"))
	if err == nil || !strings.Contains(err.Error(), "failed to unmarshal YAML") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestToModels(t *testing.T) {
	cfg, err := Load(writeFile(t, sampleProject))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	m, err := cfg.ToModels()
	if err != nil {
		t.Fatalf("ToModels returned error: %v", err)
	}
	if !strings.HasPrefix(m.Project.ID, "prj-") {
		t.Errorf("expected generated project id, got %q", m.Project.ID)
	}
	if len(m.Assets) != 1 || m.Assets[0].ProjectID != m.Project.ID {
		t.Fatalf("asset not linked to project: %+v", m.Assets)
	}
	if len(m.Versions) != 2 {
		t.Fatalf("expected 2 versions, got %d", len(m.Versions))
	}
	for _, v := range m.Versions {
		if v.AssetID != m.Assets[0].ID {
			t.Errorf("version %d not linked to asset", v.Name)
		}
	}
	if len(m.Representations) != 2 {
		t.Fatalf("expected 2 representations, got %d", len(m.Representations))
	}
	if m.Representations[0].ID != "rep-sh010-v1-exr" || m.Representations[0].VersionID != m.Versions[0].ID {
		t.Errorf("unexpected representation: %+v", m.Representations[0])
	}
	if ids := m.Project.Config.AppIdentifiers(); len(ids) != 1 || ids[0] != "aftereffects" {
		t.Errorf("unexpected app identifiers %v", ids)
	}
}
