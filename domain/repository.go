package domain

import (
	"context"

	"github.com/kompox/pipeops/domain/model"
)

// ProjectRepository stores and retrieves Project aggregates.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, id string) (*model.Project, error)
	// FindByName returns the project whose Name equals name.
	FindByName(ctx context.Context, name string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
}

// AssetRepository stores and retrieves Asset aggregates.
type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) error
	Get(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context) ([]*model.Asset, error)
	Update(ctx context.Context, a *model.Asset) error
	Delete(ctx context.Context, id string) error
}

// VersionRepository stores and retrieves Version aggregates.
type VersionRepository interface {
	Create(ctx context.Context, v *model.Version) error
	Get(ctx context.Context, id string) (*model.Version, error)
	List(ctx context.Context) ([]*model.Version, error)
	// ListByAsset returns the versions of an asset ordered by Name ascending.
	ListByAsset(ctx context.Context, assetID string) ([]*model.Version, error)
	// Latest returns the version with the highest Name under an asset.
	Latest(ctx context.Context, assetID string) (*model.Version, error)
	Update(ctx context.Context, v *model.Version) error
	Delete(ctx context.Context, id string) error
}

// RepresentationRepository stores and retrieves Representation aggregates.
type RepresentationRepository interface {
	Create(ctx context.Context, r *model.Representation) error
	Get(ctx context.Context, id string) (*model.Representation, error)
	List(ctx context.Context) ([]*model.Representation, error)
	ListByVersion(ctx context.Context, versionID string) ([]*model.Representation, error)
	Update(ctx context.Context, r *model.Representation) error
	Delete(ctx context.Context, id string) error
}

// Repositories groups repository interfaces.
type Repositories struct {
	Project        ProjectRepository
	Asset          AssetRepository
	Version        VersionRepository
	Representation RepresentationRepository
}
