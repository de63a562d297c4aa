package model

import "time"

// Representation is a stored deliverable file-set for one version.
type Representation struct {
	ID         string          `json:"id,omitempty" yaml:"id,omitempty"`
	VersionID  string          `json:"versionId,omitempty" yaml:"versionId,omitempty"` // references Version
	Name       string          `json:"name" yaml:"name"`
	Ext        string          `json:"ext" yaml:"ext"`
	Files      []string        `json:"files" yaml:"files"` // single file sequences still use a one element slice
	StagingDir string          `json:"stagingDir,omitempty" yaml:"stagingDir,omitempty"`
	Tags       []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	FrameStart int             `json:"frameStart,omitempty" yaml:"frameStart,omitempty"`
	FrameEnd   int             `json:"frameEnd,omitempty" yaml:"frameEnd,omitempty"`
	Colorspace *ColorspaceData `json:"colorspaceData,omitempty" yaml:"colorspaceData,omitempty"`
	CreatedAt  time.Time       `json:"createdAt" yaml:"-"`
	UpdatedAt  time.Time       `json:"updatedAt" yaml:"-"`
}

// ColorspaceData records the colour management of a representation.
type ColorspaceData struct {
	Colorspace string `json:"colorspace" yaml:"colorspace"`
	ConfigPath string `json:"configPath,omitempty" yaml:"configPath,omitempty"`
}

// HasTag reports whether the representation carries tag.
func (r *Representation) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
