package rdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"gorm.io/gorm"
)

// ProjectRepository is a GORM-backed implementation of domain.ProjectRepository.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func projectToRecord(p *model.Project) (*ProjectRecord, error) {
	cfg, err := encodeJSON(p.Config)
	if err != nil {
		return nil, err
	}
	return &ProjectRecord{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		Root:      p.Root,
		Config:    cfg,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func projectToModel(r *ProjectRecord) (*model.Project, error) {
	p := &model.Project{
		ID:        r.ID,
		Name:      r.Name,
		Code:      r.Code,
		Root:      r.Root,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if err := decodeJSON(r.Config, &p.Config); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	rec, err := projectToRecord(p)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = "prj-" + uuid.NewString()
		p.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*model.Project, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ProjectRepository) FindByName(ctx context.Context, name string) (*model.Project, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *ProjectRepository) first(ctx context.Context, query string, arg any) (*model.Project, error) {
	var rec ProjectRecord
	if err := r.db.WithContext(ctx).First(&rec, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProjectNotFound
		}
		return nil, err
	}
	return projectToModel(&rec)
}

func (r *ProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	var recs []ProjectRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Project, 0, len(recs))
	for i := range recs {
		p, err := projectToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	rec, err := projectToRecord(p)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&ProjectRecord{}).Where("id = ?", rec.ID).Select("*").Omit("id", "created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&ProjectRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.ProjectRepository = (*ProjectRepository)(nil)
