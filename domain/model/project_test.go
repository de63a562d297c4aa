package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProjectConfigAppIdentifiers(t *testing.T) {
	cfg := ProjectConfig{Apps: []ProjectApp{
		{Name: "aftereffects_2024"},
		{Name: "nuke_13_2"},
		{Name: "standalone"},
	}}
	got := cfg.AppIdentifiers()
	want := []string{"aftereffects", "nuke", "standalone"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AppIdentifiers() mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionGetSet(t *testing.T) {
	s := &Session{Asset: "sh010", Task: "comp", App: "aftereffects"}
	s.Set("task", "anim")
	s.Set("unknown", "x")
	if s.Get("task") != "anim" {
		t.Errorf("task = %q, want anim", s.Get("task"))
	}
	if s.Get("asset") != "sh010" {
		t.Errorf("asset = %q, want sh010", s.Get("asset"))
	}
	if s.Get("unknown") != "" {
		t.Errorf("unknown key should be empty")
	}
}
