package hostdrv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kompox/pipeops/domain/model"
)

// ContainersSidecarSuffix is appended to a scene path to locate the
// containers loaded into it.
const ContainersSidecarSuffix = ".containers.yml"

type containersFile struct {
	Containers []model.Container `yaml:"containers"`
}

// SidecarPath returns the containers file of a scene.
func SidecarPath(scene string) string {
	return scene + ContainersSidecarSuffix
}

// ReadContainers loads the containers listed in a sidecar file.
// A missing sidecar means an empty scene.
func ReadContainers(path string) ([]model.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read containers %s: %w", path, err)
	}
	var f containersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse containers %s: %w", path, err)
	}
	for i, c := range f.Containers {
		if c.Representation == "" {
			return nil, fmt.Errorf("containers[%d] (%s): representation is required", i, c.Name)
		}
	}
	return f.Containers, nil
}

// WriteContainers stores containers in a sidecar file.
func WriteContainers(path string, containers []model.Container) error {
	data, err := yaml.Marshal(&containersFile{Containers: containers})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
