package version

import (
	"context"
	"fmt"
	"time"

	"github.com/kompox/pipeops/domain/model"
)

// CreateInput contains data to create a version. A zero Name takes the
// next number after the asset's latest version.
type CreateInput struct {
	AssetID string `json:"asset_id"`
	Name    int    `json:"name,omitempty"`
	Author  string `json:"author,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// CreateOutput wraps the created version.
type CreateOutput struct {
	Version *model.Version `json:"version"`
}

// Create persists a new version of an existing asset.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.AssetID == "" || in.Name < 0 {
		return nil, model.ErrVersionInvalid
	}
	if _, err := u.Repos.Asset.Get(ctx, in.AssetID); err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", in.AssetID, err)
	}
	existing, err := u.Repos.Version.ListByAsset(ctx, in.AssetID)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == 0 {
		name = 1
		if n := len(existing); n > 0 {
			name = existing[n-1].Name + 1
		}
	}
	for _, v := range existing {
		if v.Name == name {
			return nil, fmt.Errorf("%w: version %d already exists", model.ErrVersionInvalid, name)
		}
	}
	now := time.Now().UTC()
	v := &model.Version{AssetID: in.AssetID, Name: name, Author: in.Author, Comment: in.Comment, CreatedAt: now, UpdatedAt: now}
	if err := u.Repos.Version.Create(ctx, v); err != nil {
		return nil, err
	}
	return &CreateOutput{Version: v}, nil
}

// GetInput identifies the version to fetch.
type GetInput struct {
	VersionID string `json:"version_id"`
}

// GetOutput wraps the retrieved version.
type GetOutput struct {
	Version *model.Version `json:"version"`
}

// Get retrieves a version by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.VersionID == "" {
		return nil, model.ErrVersionInvalid
	}
	v, err := u.Repos.Version.Get(ctx, in.VersionID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Version: v}, nil
}

// ListInput optionally restricts the listing to one asset.
type ListInput struct {
	AssetID string `json:"asset_id,omitempty"`
}

// ListOutput wraps listed versions.
type ListOutput struct {
	Versions []*model.Version `json:"versions"`
}

// List returns versions, all of them or those of AssetID in ascending order.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var (
		items []*model.Version
		err   error
	)
	if in != nil && in.AssetID != "" {
		items, err = u.Repos.Version.ListByAsset(ctx, in.AssetID)
	} else {
		items, err = u.Repos.Version.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &ListOutput{Versions: items}, nil
}

// DeleteInput identifies the version to delete.
type DeleteInput struct {
	VersionID string `json:"version_id"`
}

// DeleteOutput is empty because delete has no return entity.
type DeleteOutput struct{}

// Delete removes a version; empty ID is a no-op.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.VersionID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Version.Delete(ctx, in.VersionID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

// LatestInput identifies the asset whose latest version is wanted.
type LatestInput struct {
	AssetID string `json:"asset_id"`
}

// LatestOutput wraps the latest version.
type LatestOutput struct {
	Version *model.Version `json:"version"`
}

// Latest returns the highest version of an asset.
func (u *UseCase) Latest(ctx context.Context, in *LatestInput) (*LatestOutput, error) {
	if in == nil || in.AssetID == "" {
		return nil, model.ErrVersionInvalid
	}
	v, err := u.Repos.Version.Latest(ctx, in.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest version of asset %s: %w", in.AssetID, err)
	}
	return &LatestOutput{Version: v}, nil
}
