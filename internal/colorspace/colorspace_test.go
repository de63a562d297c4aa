package colorspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const doc = `
path: /studio/ocio/config.ocio
colorspaces:
  - name: ACES - ACEScg
    family: ACES
    aliases: [acescg]
  - name: Utility - sRGB - Texture
    aliases: [srgb_tx]
roles:
  scene_linear: ACES - ACEScg
`

func TestResolve(t *testing.T) {
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in, want string
	}{
		{"ACES - ACEScg", "ACES - ACEScg"},
		{"acescg", "ACES - ACEScg"},
		{"srgb_tx", "Utility - sRGB - Texture"},
		{"scene_linear", "ACES - ACEScg"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cfg.Resolve(tt.in)
			if err != nil || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
	if _, err := cfg.Resolve("rec709"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}

func TestItems(t *testing.T) {
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := []Item{
		{Value: "ACES - ACEScg", Label: "[colorspace] ACES - ACEScg"},
		{Value: "Utility - sRGB - Texture", Label: "[colorspace] Utility - sRGB - Texture"},
		{Value: "acescg", Label: "[alias] acescg (ACES - ACEScg)"},
		{Value: "srgb_tx", Label: "[alias] srgb_tx (Utility - sRGB - Texture)"},
		{Value: "scene_linear", Label: "[role] scene_linear (ACES - ACEScg)"},
	}
	if diff := cmp.Diff(want, cfg.Items()); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"no path":      "colorspaces: [{name: a}]",
		"no name":      "path: x\ncolorspaces: [{family: a}]",
		"duplicate":    "path: x\ncolorspaces: [{name: a}, {name: a}]",
		"bad role":     "path: x\ncolorspaces: [{name: a}]\nroles: {lin: b}",
		"invalid yaml": "path: [",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(in)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.yml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "/studio/ocio/config.ocio" {
		t.Errorf("Path = %q", cfg.Path)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}
