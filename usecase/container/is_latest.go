package container

import (
	"context"
	"errors"
	"fmt"
)

// IsLatestInput identifies the representation to check.
type IsLatestInput struct {
	RepresentationID string `json:"representation_id"`
}

// IsLatestOutput reports whether the representation belongs to the latest version.
type IsLatestOutput struct {
	Latest        bool `json:"latest"`
	Version       int  `json:"version"`
	LatestVersion int  `json:"latest_version"`
}

// IsLatest returns whether the representation is from the highest version
// published under its asset.
func (u *UseCase) IsLatest(ctx context.Context, in *IsLatestInput) (*IsLatestOutput, error) {
	if in == nil || in.RepresentationID == "" {
		return nil, errors.New("missing representation ID")
	}
	rep, err := u.Repos.Representation.Get(ctx, in.RepresentationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get representation %s: %w", in.RepresentationID, err)
	}
	version, err := u.Repos.Version.Get(ctx, rep.VersionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get version %s: %w", rep.VersionID, err)
	}
	highest, err := u.Repos.Version.Latest(ctx, version.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest version of asset %s: %w", version.AssetID, err)
	}
	return &IsLatestOutput{
		Latest:        version.Name == highest.Name,
		Version:       version.Name,
		LatestVersion: highest.Name,
	}, nil
}
