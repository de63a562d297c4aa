package model

import (
	"strings"
	"time"
)

// Project represents a production tracked by the project database.
type Project struct {
	ID        string
	Name      string
	Code      string
	Root      string // storage root registered for the project
	Config    ProjectConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectConfig holds per-project pipeline configuration.
type ProjectConfig struct {
	Template ProjectTemplate
	Apps     []ProjectApp
}

// ProjectTemplate holds the path templates of a project.
// Templates use {name} placeholders, e.g. "{root}/{project}/{asset}/work/{task}/{app}".
type ProjectTemplate struct {
	Work    string
	Publish string
}

// ProjectApp is an application enabled for a project.
// Name is "<app>_<variant>" (e.g. "aftereffects_2024"); the prefix before
// the first underscore identifies the launcher.
type ProjectApp struct {
	Name  string
	Label string
}

// AppIdentifiers returns the launcher identifiers of the enabled apps.
func (c ProjectConfig) AppIdentifiers() []string {
	out := make([]string, 0, len(c.Apps))
	for _, a := range c.Apps {
		id, _, _ := strings.Cut(a.Name, "_")
		out = append(out, id)
	}
	return out
}
