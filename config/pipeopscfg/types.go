// Package pipeopscfg defines the schema of the YAML project database file
// (project.yml) used by the file: db-url scheme.
package pipeopscfg

// Root is the root structure of project.yml.
type Root struct {
	Version string  `yaml:"version"`
	Project Project `yaml:"project"`
	Assets  []Asset `yaml:"assets,omitempty"`
}

// Project describes the production.
type Project struct {
	ID       string   `yaml:"id,omitempty"`
	Name     string   `yaml:"name"`
	Code     string   `yaml:"code,omitempty"`
	Root     string   `yaml:"root,omitempty"` // storage root
	Template Template `yaml:"template"`
	Apps     []App    `yaml:"apps,omitempty"`
}

// Template holds the path templates of the project.
type Template struct {
	Work    string `yaml:"work"`
	Publish string `yaml:"publish,omitempty"`
}

// App is an application enabled for the project, e.g. "aftereffects_2024".
type App struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
}

// Asset is a shot or asset with its published versions.
type Asset struct {
	ID       string    `yaml:"id,omitempty"`
	Name     string    `yaml:"name"`
	Silo     string    `yaml:"silo,omitempty"`
	Tasks    []string  `yaml:"tasks,omitempty"`
	Versions []Version `yaml:"versions,omitempty"`
}

// Version is a published version of an asset.
type Version struct {
	ID              string           `yaml:"id,omitempty"`
	Name            int              `yaml:"name"`
	Author          string           `yaml:"author,omitempty"`
	Comment         string           `yaml:"comment,omitempty"`
	Representations []Representation `yaml:"representations,omitempty"`
}

// Representation is a file-set of a version. ID should be set when scenes
// reference the representation through containers.
type Representation struct {
	ID         string   `yaml:"id,omitempty"`
	Name       string   `yaml:"name"`
	Ext        string   `yaml:"ext,omitempty"`
	Files      []string `yaml:"files,omitempty"`
	StagingDir string   `yaml:"stagingDir,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
	FrameStart int      `yaml:"frameStart,omitempty"`
	FrameEnd   int      `yaml:"frameEnd,omitempty"`
}
