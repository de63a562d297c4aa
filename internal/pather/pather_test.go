package pather

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const workTemplate = "{root}/{project}/{silo}/{asset}/work/{task}/{app}"

func TestFields(t *testing.T) {
	got := Fields("{root}/{project}/{asset}/{asset}_{task}")
	want := []string{"root", "project", "asset", "task"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		data map[string]string
		want string
	}{
		{"root only", map[string]string{"root": "/mnt/projects"}, "/mnt/projects/{project}/{silo}/{asset}/work/{task}/{app}"},
		{"no data", nil, workTemplate},
		{"all", map[string]string{"root": "/r", "project": "p", "silo": "film", "asset": "sh010", "task": "comp", "app": "aftereffects"}, "/r/p/film/sh010/work/comp/aftereffects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(workTemplate, tt.data); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tmpl := Format(workTemplate, map[string]string{"root": "/mnt/projects"})
	tests := []struct {
		name    string
		path    string
		want    map[string]string
		wantErr bool
	}{
		{
			name: "work directory",
			path: "/mnt/projects/demo/film/sh010/work/comp/aftereffects",
			want: map[string]string{"project": "demo", "silo": "film", "asset": "sh010", "task": "comp", "app": "aftereffects"},
		},
		{
			name: "work file below template",
			path: "/mnt/projects/demo/film/sh010/work/comp/aftereffects/sh010_comp_v003.aep",
			want: map[string]string{"project": "demo", "silo": "film", "asset": "sh010", "task": "comp", "app": "aftereffects"},
		},
		{
			name: "windows separators",
			path: `/mnt/projects\demo\film\sh010\work\comp\aftereffects\scene.aep`,
			want: map[string]string{"project": "demo", "silo": "film", "asset": "sh010", "task": "comp", "app": "aftereffects"},
		},
		{
			name:    "other root",
			path:    "/other/demo/film/sh010/work/comp/aftereffects/scene.aep",
			wantErr: true,
		},
		{
			name: "trailing separator",
			path: "/mnt/projects/demo/film/sh010/work/comp/nuke/",
			want: map[string]string{"project": "demo", "silo": "film", "asset": "sh010", "task": "comp", "app": "nuke"},
		},
		{
			name:    "missing level",
			path:    "/mnt/projects/demo/sh010/work/comp",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tmpl, tt.path)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				if pe.Path != tt.path {
					t.Errorf("ParseError.Path = %q, want %q", pe.Path, tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_RepeatedField(t *testing.T) {
	tmpl := "/work/{asset}/{asset}_{task}.aep"
	got, err := Parse(tmpl, "/work/sh010/sh010_comp.aep")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got["asset"] != "sh010" || got["task"] != "comp" {
		t.Errorf("unexpected fields %v", got)
	}

	_, err = Parse(tmpl, "/work/sh010/sh020_comp.aep")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Reason == "" {
		t.Fatalf("expected ParseError with reason, got %v", err)
	}
}

func TestParse_LiteralMetacharacters(t *testing.T) {
	got, err := Parse("/proj (a+b)/{asset}", "/proj (a+b)/sh010")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got["asset"] != "sh010" {
		t.Errorf("asset = %q", got["asset"])
	}
}
