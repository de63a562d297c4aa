package model

// Session is the current work context of an artist.
type Session struct {
	Project string `json:"project" yaml:"project"`
	Asset   string `json:"asset" yaml:"asset"`
	Task    string `json:"task" yaml:"task"`
	App     string `json:"app" yaml:"app"`
	Root    string `json:"root,omitempty" yaml:"root,omitempty"`
	Workdir string `json:"workdir,omitempty" yaml:"workdir,omitempty"`
}

// Get returns the value of a context key (asset, task, app, project).
func (s *Session) Get(key string) string {
	switch key {
	case "project":
		return s.Project
	case "asset":
		return s.Asset
	case "task":
		return s.Task
	case "app":
		return s.App
	}
	return ""
}

// Set assigns a context key. Unknown keys are ignored.
func (s *Session) Set(key, value string) {
	switch key {
	case "project":
		s.Project = value
	case "asset":
		s.Asset = value
	case "task":
		s.Task = value
	case "app":
		s.App = value
	}
}
