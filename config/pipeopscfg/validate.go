package pipeopscfg

import (
	"errors"
	"fmt"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if r.Project.Name == "" {
		return errors.New("project.name is required")
	}
	seenAssets := make(map[string]struct{}, len(r.Assets))
	seenReprs := map[string]struct{}{}
	for i, a := range r.Assets {
		if a.Name == "" {
			return fmt.Errorf("assets[%d].name is required", i)
		}
		if _, dup := seenAssets[a.Name]; dup {
			return fmt.Errorf("assets[%d].name: duplicate asset name %q", i, a.Name)
		}
		seenAssets[a.Name] = struct{}{}

		seenVersions := map[int]struct{}{}
		for j, v := range a.Versions {
			if v.Name <= 0 {
				return fmt.Errorf("assets[%d].versions[%d].name must be positive, got %d", i, j, v.Name)
			}
			if _, dup := seenVersions[v.Name]; dup {
				return fmt.Errorf("assets[%d].versions[%d].name: duplicate version %d", i, j, v.Name)
			}
			seenVersions[v.Name] = struct{}{}

			for k, rep := range v.Representations {
				if rep.Name == "" {
					return fmt.Errorf("assets[%d].versions[%d].representations[%d].name is required", i, j, k)
				}
				if rep.ID == "" {
					continue
				}
				if _, dup := seenReprs[rep.ID]; dup {
					return fmt.Errorf("assets[%d].versions[%d].representations[%d].id: duplicate id %q", i, j, k, rep.ID)
				}
				seenReprs[rep.ID] = struct{}{}
			}
		}
	}
	return nil
}
