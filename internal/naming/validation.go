// Package naming validates and generates identifiers used across the pipeline.
package naming

import (
	"fmt"
	"regexp"
)

const (
	projectNameMaxLength = 64
	assetNameMaxLength   = 64
	taskNameMaxLength    = 32
)

// Names end up in path templates, so separators and placeholders are refused.
var nameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func validateName(name string, maximum int, kind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", kind, maximum)
	}
	if !nameRE.MatchString(name) {
		return fmt.Errorf("invalid %s name %q: must start with a letter or digit and contain only letters, digits, '_', '.' or '-'", kind, name)
	}
	return nil
}

// ValidateProjectName checks a project name. Spaces are allowed since
// projects are matched by their full name on the collaboration platform.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if len(name) > projectNameMaxLength {
		return fmt.Errorf("project name exceeds %d characters", projectNameMaxLength)
	}
	for _, r := range name {
		if r == '/' || r == '\\' || r == '{' || r == '}' {
			return fmt.Errorf("invalid project name %q: must not contain %q", name, r)
		}
	}
	return nil
}

func ValidateAssetName(name string) error {
	return validateName(name, assetNameMaxLength, "asset")
}

func ValidateTaskName(name string) error {
	return validateName(name, taskNameMaxLength, "task")
}
