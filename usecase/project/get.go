package project

import (
	"context"

	"github.com/kompox/pipeops/domain/model"
)

// GetInput identifies the project to fetch, by ID or by name.
type GetInput struct {
	ProjectID string `json:"project_id,omitempty"`
	Name      string `json:"name,omitempty"`
}

// GetOutput wraps the retrieved project.
type GetOutput struct {
	Project *model.Project `json:"project"`
}

// Get retrieves a project by ID, or by name when no ID is given.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || (in.ProjectID == "" && in.Name == "") {
		return nil, model.ErrProjectInvalid
	}
	var (
		p   *model.Project
		err error
	)
	if in.ProjectID != "" {
		p, err = u.Repos.Project.Get(ctx, in.ProjectID)
	} else {
		p, err = u.Repos.Project.FindByName(ctx, in.Name)
	}
	if err != nil {
		return nil, err
	}
	return &GetOutput{Project: p}, nil
}
