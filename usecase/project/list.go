package project

import (
	"context"

	"github.com/kompox/pipeops/domain/model"
)

// ListInput defines optional filters for listing projects.
type ListInput struct{}

// ListOutput wraps listed projects.
type ListOutput struct {
	Projects []*model.Project `json:"projects"`
}

// List returns all projects.
func (u *UseCase) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	items, err := u.Repos.Project.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Projects: items}, nil
}
