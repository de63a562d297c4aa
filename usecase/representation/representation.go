package representation

import (
	"context"
	"fmt"
	"time"

	"github.com/kompox/pipeops/domain/model"
)

// CreateInput contains data to create a representation.
type CreateInput struct {
	VersionID  string                `json:"version_id"`
	Name       string                `json:"name"`
	Ext        string                `json:"ext,omitempty"`
	Files      []string              `json:"files,omitempty"`
	StagingDir string                `json:"staging_dir,omitempty"`
	Tags       []string              `json:"tags,omitempty"`
	FrameStart int                   `json:"frame_start,omitempty"`
	FrameEnd   int                   `json:"frame_end,omitempty"`
	Colorspace *model.ColorspaceData `json:"colorspace,omitempty"`
}

// CreateOutput wraps the created representation.
type CreateOutput struct {
	Representation *model.Representation `json:"representation"`
}

// Create persists a new representation of an existing version. Ext
// defaults to Name.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.VersionID == "" || in.Name == "" {
		return nil, model.ErrRepresentationInvalid
	}
	if in.FrameEnd < in.FrameStart {
		return nil, fmt.Errorf("%w: frame range %d-%d", model.ErrRepresentationInvalid, in.FrameStart, in.FrameEnd)
	}
	if _, err := u.Repos.Version.Get(ctx, in.VersionID); err != nil {
		return nil, fmt.Errorf("failed to get version %s: %w", in.VersionID, err)
	}
	ext := in.Ext
	if ext == "" {
		ext = in.Name
	}
	now := time.Now().UTC()
	r := &model.Representation{
		VersionID:  in.VersionID,
		Name:       in.Name,
		Ext:        ext,
		Files:      in.Files,
		StagingDir: in.StagingDir,
		Tags:       in.Tags,
		FrameStart: in.FrameStart,
		FrameEnd:   in.FrameEnd,
		Colorspace: in.Colorspace,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.Repos.Representation.Create(ctx, r); err != nil {
		return nil, err
	}
	return &CreateOutput{Representation: r}, nil
}

// GetInput identifies the representation to fetch.
type GetInput struct {
	RepresentationID string `json:"representation_id"`
}

// GetOutput wraps the retrieved representation.
type GetOutput struct {
	Representation *model.Representation `json:"representation"`
}

// Get retrieves a representation by ID.
func (u *UseCase) Get(ctx context.Context, in *GetInput) (*GetOutput, error) {
	if in == nil || in.RepresentationID == "" {
		return nil, model.ErrRepresentationInvalid
	}
	r, err := u.Repos.Representation.Get(ctx, in.RepresentationID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Representation: r}, nil
}

// ListInput optionally restricts the listing to one version.
type ListInput struct {
	VersionID string `json:"version_id,omitempty"`
}

// ListOutput wraps listed representations.
type ListOutput struct {
	Representations []*model.Representation `json:"representations"`
}

// List returns representations, all of them or those of VersionID.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	var (
		items []*model.Representation
		err   error
	)
	if in != nil && in.VersionID != "" {
		items, err = u.Repos.Representation.ListByVersion(ctx, in.VersionID)
	} else {
		items, err = u.Repos.Representation.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &ListOutput{Representations: items}, nil
}

// DeleteInput identifies the representation to delete.
type DeleteInput struct {
	RepresentationID string `json:"representation_id"`
}

// DeleteOutput is empty because delete has no return entity.
type DeleteOutput struct{}

// Delete removes a representation; empty ID is a no-op.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil || in.RepresentationID == "" {
		return &DeleteOutput{}, nil
	}
	if err := u.Repos.Representation.Delete(ctx, in.RepresentationID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}
