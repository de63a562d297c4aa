package inmem

import (
	"context"
	"sort"
	"time"

	"github.com/kompox/pipeops/config/pipeopscfg"
	"github.com/kompox/pipeops/domain"
)

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	ProjectRepository        *ProjectRepository
	AssetRepository          *AssetRepository
	VersionRepository        *VersionRepository
	RepresentationRepository *RepresentationRepository
	ConfigRoot               *pipeopscfg.Root
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		ProjectRepository:        NewProjectRepository(),
		AssetRepository:          NewAssetRepository(),
		VersionRepository:        NewVersionRepository(),
		RepresentationRepository: NewRepresentationRepository(),
	}
}

// Repositories returns the store's repositories as a domain.Repositories.
func (s *Store) Repositories() *domain.Repositories {
	return &domain.Repositories{
		Project:        s.ProjectRepository,
		Asset:          s.AssetRepository,
		Version:        s.VersionRepository,
		Representation: s.RepresentationRepository,
	}
}

// LoadFromConfig loads a project.yml configuration into the memory store.
func (s *Store) LoadFromConfig(ctx context.Context, cfg *pipeopscfg.Root) error {
	m, err := cfg.ToModels()
	if err != nil {
		return err
	}

	// Store models in dependency order: project → asset → version → representation
	if err := s.ProjectRepository.Create(ctx, m.Project); err != nil {
		return err
	}
	for _, a := range m.Assets {
		if err := s.AssetRepository.Create(ctx, a); err != nil {
			return err
		}
	}
	for _, v := range m.Versions {
		if err := s.VersionRepository.Create(ctx, v); err != nil {
			return err
		}
	}
	for _, r := range m.Representations {
		if err := s.RepresentationRepository.Create(ctx, r); err != nil {
			return err
		}
	}
	s.ConfigRoot = cfg
	return nil
}

// LoadFromFile loads a project.yml file into the memory store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	cfg, err := pipeopscfg.Load(path)
	if err != nil {
		return err
	}
	return s.LoadFromConfig(ctx, cfg)
}

// sortByCreated orders items by creation time, then by ID for a stable listing.
func sortByCreated[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}
