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

// RepresentationRepository is a thread-safe in-memory implementation.
type RepresentationRepository struct {
	mu    sync.RWMutex
	items map[string]*model.Representation
	seq   int64
}

func NewRepresentationRepository() *RepresentationRepository {
	return &RepresentationRepository{items: make(map[string]*model.Representation)}
}

func (r *RepresentationRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("rep-%d-%d", time.Now().UnixNano(), r.seq)
}

func copyRepresentation(rep *model.Representation) *model.Representation {
	cp := *rep
	cp.Files = slices.Clone(rep.Files)
	cp.Tags = slices.Clone(rep.Tags)
	if rep.Colorspace != nil {
		cs := *rep.Colorspace
		cp.Colorspace = &cs
	}
	return &cp
}

func (r *RepresentationRepository) Create(_ context.Context, rep *model.Representation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rep.ID == "" {
		rep.ID = r.nextID()
	}
	r.items[rep.ID] = copyRepresentation(rep)
	return nil
}

func (r *RepresentationRepository) Get(_ context.Context, id string) (*model.Representation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rep, ok := r.items[id]
	if !ok {
		return nil, model.ErrRepresentationNotFound
	}
	return copyRepresentation(rep), nil
}

func (r *RepresentationRepository) List(_ context.Context) ([]*model.Representation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Representation, 0, len(r.items))
	for _, rep := range r.items {
		out = append(out, copyRepresentation(rep))
	}
	sortByCreated(out, func(rep *model.Representation) (time.Time, string) { return rep.CreatedAt, rep.ID })
	return out, nil
}

func (r *RepresentationRepository) ListByVersion(_ context.Context, versionID string) ([]*model.Representation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Representation
	for _, rep := range r.items {
		if rep.VersionID == versionID {
			out = append(out, copyRepresentation(rep))
		}
	}
	sortByCreated(out, func(rep *model.Representation) (time.Time, string) { return rep.CreatedAt, rep.ID })
	return out, nil
}

func (r *RepresentationRepository) Update(_ context.Context, rep *model.Representation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[rep.ID]
	if !ok {
		return model.ErrRepresentationNotFound
	}
	cp := copyRepresentation(rep)
	cp.CreatedAt = existing.CreatedAt
	r.items[rep.ID] = cp
	return nil
}

func (r *RepresentationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return model.ErrRepresentationNotFound
	}
	delete(r.items, id)
	return nil
}

var _ domain.RepresentationRepository = (*RepresentationRepository)(nil)
