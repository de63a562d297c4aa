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

// ProjectRepository is a thread-safe in-memory implementation.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]*model.Project
	seq      int64
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{projects: make(map[string]*model.Project)}
}

func (r *ProjectRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("prj-%d-%d", time.Now().UnixNano(), r.seq)
}

func copyProject(p *model.Project) *model.Project {
	cp := *p
	cp.Config.Apps = slices.Clone(p.Config.Apps)
	return &cp
}

func (r *ProjectRepository) Create(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = r.nextID()
	}
	r.projects[p.ID] = copyProject(p)
	return nil
}

func (r *ProjectRepository) Get(_ context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, model.ErrProjectNotFound
	}
	return copyProject(p), nil
}

func (r *ProjectRepository) FindByName(_ context.Context, name string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.projects {
		if p.Name == name {
			return copyProject(p), nil
		}
	}
	return nil, model.ErrProjectNotFound
}

func (r *ProjectRepository) List(_ context.Context) ([]*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, copyProject(p))
	}
	sortByCreated(out, func(p *model.Project) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

func (r *ProjectRepository) Update(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[p.ID]
	if !ok {
		return model.ErrProjectNotFound
	}
	cp := copyProject(p)
	cp.CreatedAt = existing.CreatedAt
	r.projects[p.ID] = cp
	return nil
}

func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return model.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

var _ domain.ProjectRepository = (*ProjectRepository)(nil)
