package inmem

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
)

// AssetRepository is a thread-safe in-memory implementation.
type AssetRepository struct {
	mu     sync.RWMutex
	assets map[string]*model.Asset
	seq    int64
}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{assets: make(map[string]*model.Asset)}
}

func (r *AssetRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("ast-%d-%d", time.Now().UnixNano(), r.seq)
}

func copyAsset(a *model.Asset) *model.Asset {
	cp := *a
	cp.Tasks = slices.Clone(a.Tasks)
	return &cp
}

func (r *AssetRepository) Create(_ context.Context, a *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = r.nextID()
	}
	r.assets[a.ID] = copyAsset(a)
	return nil
}

func (r *AssetRepository) Get(_ context.Context, id string) (*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.assets[id]
	if !ok {
		return nil, model.ErrAssetNotFound
	}
	return copyAsset(a), nil
}

func (r *AssetRepository) List(_ context.Context) ([]*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		out = append(out, copyAsset(a))
	}
	sortByCreated(out, func(a *model.Asset) (time.Time, string) { return a.CreatedAt, a.ID })
	return out, nil
}

func (r *AssetRepository) Update(_ context.Context, a *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.assets[a.ID]
	if !ok {
		return model.ErrAssetNotFound
	}
	cp := copyAsset(a)
	cp.CreatedAt = existing.CreatedAt
	r.assets[a.ID] = cp
	return nil
}

func (r *AssetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.assets[id]; !ok {
		return model.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

var _ domain.AssetRepository = (*AssetRepository)(nil)
