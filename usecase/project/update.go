package project

import (
	"context"
	"time"

	"github.com/kompox/pipeops/domain/model"
)

// UpdateInput specifies project fields that can be changed.
type UpdateInput struct {
	ProjectID string               `json:"project_id"`
	Code      *string              `json:"code,omitempty"`
	Root      *string              `json:"root,omitempty"`
	Config    *model.ProjectConfig `json:"config,omitempty"`
}

// UpdateOutput wraps the updated project.
type UpdateOutput struct {
	Project *model.Project `json:"project"`
}

// Update applies provided changes to a project.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.ProjectID == "" {
		return nil, model.ErrProjectInvalid
	}
	existing, err := u.Repos.Project.Get(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	changed := false
	if in.Code != nil && existing.Code != *in.Code {
		existing.Code = *in.Code
		changed = true
	}
	if in.Root != nil && existing.Root != *in.Root {
		existing.Root = *in.Root
		changed = true
	}
	if in.Config != nil {
		existing.Config = *in.Config
		changed = true
	}
	if changed {
		existing.UpdatedAt = time.Now().UTC()
		if err := u.Repos.Project.Update(ctx, existing); err != nil {
			return nil, err
		}
	}
	return &UpdateOutput{Project: existing}, nil
}
