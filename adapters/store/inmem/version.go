package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
)

// VersionRepository is a thread-safe in-memory implementation.
type VersionRepository struct {
	mu       sync.RWMutex
	versions map[string]*model.Version
	seq      int64
}

func NewVersionRepository() *VersionRepository {
	return &VersionRepository{versions: make(map[string]*model.Version)}
}

func (r *VersionRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("ver-%d-%d", time.Now().UnixNano(), r.seq)
}

func (r *VersionRepository) Create(_ context.Context, v *model.Version) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.ID == "" {
		v.ID = r.nextID()
	}
	cp := *v
	r.versions[v.ID] = &cp
	return nil
}

func (r *VersionRepository) Get(_ context.Context, id string) (*model.Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.versions[id]
	if !ok {
		return nil, model.ErrVersionNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *VersionRepository) List(_ context.Context) ([]*model.Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Version, 0, len(r.versions))
	for _, v := range r.versions {
		cp := *v
		out = append(out, &cp)
	}
	sortByCreated(out, func(v *model.Version) (time.Time, string) { return v.CreatedAt, v.ID })
	return out, nil
}

func (r *VersionRepository) ListByAsset(_ context.Context, assetID string) ([]*model.Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Version
	for _, v := range r.versions {
		if v.AssetID == assetID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *VersionRepository) Latest(ctx context.Context, assetID string) (*model.Version, error) {
	versions, err := r.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, model.ErrVersionNotFound
	}
	return versions[len(versions)-1], nil
}

func (r *VersionRepository) Update(_ context.Context, v *model.Version) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.versions[v.ID]
	if !ok {
		return model.ErrVersionNotFound
	}
	cp := *v
	cp.CreatedAt = existing.CreatedAt
	r.versions[v.ID] = &cp
	return nil
}

func (r *VersionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.versions[id]; !ok {
		return model.ErrVersionNotFound
	}
	delete(r.versions, id)
	return nil
}

var _ domain.VersionRepository = (*VersionRepository)(nil)
