package publish

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/kompox/pipeops/domain/model"
	"gopkg.in/yaml.v3"
)

// Instance is one publishable item collected from a scene.
type Instance struct {
	Name       string   `json:"name" yaml:"name"`
	Family     string   `json:"family" yaml:"family"`
	Families   []string `json:"families,omitempty" yaml:"families,omitempty"`
	StagingDir string   `json:"stagingDir" yaml:"stagingDir"`
	// FileName is the file name set on the render queue output module.
	FileName   string `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	CompID     string `json:"compId,omitempty" yaml:"compId,omitempty"`
	FrameStart int    `json:"frameStart" yaml:"frameStart"`
	FrameEnd   int    `json:"frameEnd" yaml:"frameEnd"`
	Review     bool   `json:"review" yaml:"review"`
	// Attributes hold values chosen by the user, e.g. "colorspace".
	Attributes      map[string]string       `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Representations []*model.Representation `json:"representations" yaml:"representations,omitempty"`
}

// AllFamilies returns Family followed by Families.
func (i *Instance) AllFamilies() []string {
	out := make([]string, 0, 1+len(i.Families))
	if i.Family != "" {
		out = append(out, i.Family)
	}
	for _, f := range i.Families {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// InstanceFile is the on-disk form of a publish request.
type InstanceFile struct {
	Host      string      `yaml:"host,omitempty"`
	Instances []*Instance `yaml:"instances"`
}

// LoadInstances reads an instance file.
func LoadInstances(path string) (*InstanceFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance file: %w", err)
	}
	var f InstanceFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse instance file %s: %w", path, err)
	}
	if len(f.Instances) == 0 {
		return nil, errors.New("instance file has no instances")
	}
	for n, inst := range f.Instances {
		if inst == nil || inst.Name == "" {
			return nil, fmt.Errorf("instances[%d]: name is required", n)
		}
	}
	return &f, nil
}
