package project

import "context"

// DeleteInput identifies the project to delete.
type DeleteInput struct {
	ProjectID string `json:"project_id"`
}

// DeleteOutput is empty because delete has no return entity.
type DeleteOutput struct{}

// Delete removes a project; empty ID is a no-op.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.ProjectID == "" { // idempotent no-op
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Project.Delete(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
