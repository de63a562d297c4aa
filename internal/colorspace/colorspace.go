// Package colorspace reads colour management configurations.
//
// The file is a YAML digest of an OCIO config:
//
//	path: /studio/ocio/aces_1.2/config.ocio
//	colorspaces:
//	  - name: ACES - ACEScg
//	    family: ACES
//	    aliases: [acescg]
//	roles:
//	  scene_linear: ACES - ACEScg
package colorspace

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknown is returned when a name is neither a colorspace, alias nor role.
var ErrUnknown = errors.New("unknown colorspace")

type Colorspace struct {
	Name    string   `yaml:"name"`
	Family  string   `yaml:"family,omitempty"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// Config is a loaded colour configuration.
type Config struct {
	// Path is the OCIO config file the digest was taken from.
	Path        string            `yaml:"path"`
	Colorspaces []Colorspace      `yaml:"colorspaces"`
	Roles       map[string]string `yaml:"roles,omitempty"`
}

// Item is one selectable entry, as offered to users.
type Item struct {
	Value string
	Label string
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read colour config %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a configuration document.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse colour config: %w", err)
	}
	if cfg.Path == "" {
		return nil, errors.New("colour config: path is required")
	}
	seen := map[string]bool{}
	for i, cs := range cfg.Colorspaces {
		if cs.Name == "" {
			return nil, fmt.Errorf("colour config: colorspaces[%d]: name is required", i)
		}
		if seen[cs.Name] {
			return nil, fmt.Errorf("colour config: duplicate colorspace %q", cs.Name)
		}
		seen[cs.Name] = true
	}
	for role, target := range cfg.Roles {
		if !seen[target] {
			return nil, fmt.Errorf("colour config: role %q refers to unknown colorspace %q", role, target)
		}
	}
	return &cfg, nil
}

// Resolve maps a colorspace name, alias or role to the colorspace name.
func (c *Config) Resolve(name string) (string, error) {
	for _, cs := range c.Colorspaces {
		if cs.Name == name {
			return cs.Name, nil
		}
	}
	for _, cs := range c.Colorspaces {
		for _, a := range cs.Aliases {
			if a == name {
				return cs.Name, nil
			}
		}
	}
	if target, ok := c.Roles[name]; ok {
		return target, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknown, name)
}

// Items lists colorspaces, then aliases, then roles, each labelled with
// its kind. Roles are sorted by name.
func (c *Config) Items() []Item {
	var items []Item
	for _, cs := range c.Colorspaces {
		items = append(items, Item{Value: cs.Name, Label: "[colorspace] " + cs.Name})
	}
	for _, cs := range c.Colorspaces {
		for _, a := range cs.Aliases {
			items = append(items, Item{Value: a, Label: "[alias] " + a + " (" + cs.Name + ")"})
		}
	}
	roles := make([]string, 0, len(c.Roles))
	for r := range c.Roles {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	for _, r := range roles {
		items = append(items, Item{Value: r, Label: "[role] " + r + " (" + c.Roles[r] + ")"})
	}
	return items
}
