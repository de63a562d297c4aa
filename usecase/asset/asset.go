package asset

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/naming"
)

// CreateInput contains data to create an asset.
type CreateInput struct {
	ProjectID string   `json:"project_id"`
	Name      string   `json:"name"`
	Silo      string   `json:"silo,omitempty"`
	Tasks     []string `json:"tasks,omitempty"`
}

// CreateOutput wraps the created asset.
type CreateOutput struct {
	Asset *model.Asset `json:"asset"`
}

// Create persists a new asset under an existing project. Asset names are
// unique within a project.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.ProjectID == "" || in.Name == "" {
		return nil, model.ErrAssetInvalid
	}
	if err := naming.ValidateAssetName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrAssetInvalid, err)
	}
	for _, task := range in.Tasks {
		if err := naming.ValidateTaskName(task); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrAssetInvalid, err)
		}
	}
	if _, err := u.Repos.Project.Get(ctx, in.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", in.ProjectID, err)
	}
	siblings, err := u.list(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(siblings, func(a *model.Asset) bool { return a.Name == in.Name }) {
		return nil, fmt.Errorf("%w: asset %q already exists", model.ErrAssetInvalid, in.Name)
	}
	now := time.Now().UTC()
	a := &model.Asset{ProjectID: in.ProjectID, Name: in.Name, Silo: in.Silo, Tasks: in.Tasks, CreatedAt: now, UpdatedAt: now}
	if err := u.Repos.Asset.Create(ctx, a); err != nil {
		return nil, err
	}
	return &CreateOutput{Asset: a}, nil
}

// GetInput identifies the asset to fetch.
type GetInput struct {
	AssetID string `json:"asset_id"`
}

// GetOutput wraps the retrieved asset.
type GetOutput struct {
	Asset *model.Asset `json:"asset"`
}

// Get retrieves an asset by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.AssetID == "" {
		return nil, model.ErrAssetInvalid
	}
	a, err := u.Repos.Asset.Get(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Asset: a}, nil
}

// ListInput optionally restricts the listing to one project.
type ListInput struct {
	ProjectID string `json:"project_id,omitempty"`
}

// ListOutput wraps listed assets.
type ListOutput struct {
	Assets []*model.Asset `json:"assets"`
}

// List returns assets, all of them or those of ProjectID.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var projectID string
	if in != nil {
		projectID = in.ProjectID
	}
	items, err := u.list(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Assets: items}, nil
}

func (u *UseCase) list(ctx context.Context, projectID string) ([]*model.Asset, error) {
	items, err := u.Repos.Asset.List(ctx)
	if err != nil {
		return nil, err
	}
	if projectID == "" {
		return items, nil
	}
	return slices.DeleteFunc(items, func(a *model.Asset) bool { return a.ProjectID != projectID }), nil
}

// UpdateInput specifies asset fields that can be changed.
type UpdateInput struct {
	AssetID string    `json:"asset_id"`
	Silo    *string   `json:"silo,omitempty"`
	Tasks   *[]string `json:"tasks,omitempty"`
}

// UpdateOutput wraps the updated asset.
type UpdateOutput struct {
	Asset *model.Asset `json:"asset"`
}

// Update applies provided changes to an asset.
func (u *UseCase) Update(ctx context.Context, in *UpdateInput) (*UpdateOutput, error) {
	if in == nil || in.AssetID == "" {
		return nil, model.ErrAssetInvalid
	}
	existing, err := u.Repos.Asset.Get(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	changed := false
	if in.Silo != nil && existing.Silo != *in.Silo {
		existing.Silo = *in.Silo
		changed = true
	}
	if in.Tasks != nil && !slices.Equal(existing.Tasks, *in.Tasks) {
		existing.Tasks = *in.Tasks
		changed = true
	}
	if changed {
		existing.UpdatedAt = time.Now().UTC()
		if err := u.Repos.Asset.Update(ctx, existing); err != nil {
			return nil, err
		}
	}
	return &UpdateOutput{Asset: existing}, nil
}

// DeleteInput identifies the asset to delete.
type DeleteInput struct {
	AssetID string `json:"asset_id"`
}

// DeleteOutput is empty because delete has no return entity.
type DeleteOutput struct{}

// Delete removes an asset; empty ID is a no-op.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.AssetID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Asset.Delete(ctx, in.AssetID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
