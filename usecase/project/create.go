package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/naming"
)

// CreateInput contains data to create a project.
type CreateInput struct {
	Name   string              `json:"name"`
	Code   string              `json:"code,omitempty"`
	Root   string              `json:"root,omitempty"`
	Config model.ProjectConfig `json:"config"`
}

// CreateOutput wraps the created project.
type CreateOutput struct {
	Project *model.Project `json:"project"`
}

// Create persists a new project. Project names are unique.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Name == "" {
		return nil, model.ErrProjectInvalid
	}
	if err := naming.ValidateProjectName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProjectInvalid, err)
	}
	_, err := u.Repos.Project.FindByName(ctx, in.Name)
	if err == nil {
		return nil, fmt.Errorf("%w: project %q already exists", model.ErrProjectInvalid, in.Name)
	}
	if !errors.Is(err, model.ErrProjectNotFound) {
		return nil, err
	}
	now := time.Now().UTC()
	p := &model.Project{Name: in.Name, Code: in.Code, Root: in.Root, Config: in.Config, CreatedAt: now, UpdatedAt: now}
	if err := u.Repos.Project.Create(ctx, p); err != nil {
		return nil, err
	}
	return &CreateOutput{Project: p}, nil
}
