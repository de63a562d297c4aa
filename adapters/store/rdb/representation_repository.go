package rdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"gorm.io/gorm"
)

type RepresentationRepository struct{ db *gorm.DB }

func NewRepresentationRepository(db *gorm.DB) *RepresentationRepository {
	return &RepresentationRepository{db: db}
}

func representationToRecord(m *model.Representation) (*RepresentationRecord, error) {
	files, err := encodeJSON(m.Files)
	if err != nil {
		return nil, err
	}
	tags, err := encodeJSON(m.Tags)
	if err != nil {
		return nil, err
	}
	var cs string
	if m.Colorspace != nil {
		if cs, err = encodeJSON(m.Colorspace); err != nil {
			return nil, err
		}
	}
	return &RepresentationRecord{
		ID:         m.ID,
		VersionID:  m.VersionID,
		Name:       m.Name,
		Ext:        m.Ext,
		Files:      files,
		StagingDir: m.StagingDir,
		Tags:       tags,
		FrameStart: m.FrameStart,
		FrameEnd:   m.FrameEnd,
		Colorspace: cs,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func representationToModel(r *RepresentationRecord) (*model.Representation, error) {
	m := &model.Representation{
		ID:         r.ID,
		VersionID:  r.VersionID,
		Name:       r.Name,
		Ext:        r.Ext,
		StagingDir: r.StagingDir,
		FrameStart: r.FrameStart,
		FrameEnd:   r.FrameEnd,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if err := decodeJSON(r.Files, &m.Files); err != nil {
		return nil, err
	}
	if err := decodeJSON(r.Tags, &m.Tags); err != nil {
		return nil, err
	}
	if r.Colorspace != "" {
		m.Colorspace = &model.ColorspaceData{}
		if err := decodeJSON(r.Colorspace, m.Colorspace); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (r *RepresentationRepository) Create(ctx context.Context, m *model.Representation) error {
	rec, err := representationToRecord(m)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = "rep-" + uuid.NewString()
		m.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RepresentationRepository) Get(ctx context.Context, id string) (*model.Representation, error) {
	var rec RepresentationRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRepresentationNotFound
		}
		return nil, err
	}
	return representationToModel(&rec)
}

func (r *RepresentationRepository) List(ctx context.Context) ([]*model.Representation, error) {
	return r.find(ctx, r.db.WithContext(ctx))
}

func (r *RepresentationRepository) ListByVersion(ctx context.Context, versionID string) ([]*model.Representation, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("version_id = ?", versionID))
}

func (r *RepresentationRepository) find(_ context.Context, tx *gorm.DB) ([]*model.Representation, error) {
	var recs []RepresentationRecord
	if err := tx.Order("created_at ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Representation, 0, len(recs))
	for i := range recs {
		m, err := representationToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *RepresentationRepository) Update(ctx context.Context, m *model.Representation) error {
	rec, err := representationToRecord(m)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&RepresentationRecord{}).Where("id = ?", rec.ID).Select("*").Omit("id", "created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrRepresentationNotFound
	}
	return nil
}

func (r *RepresentationRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&RepresentationRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrRepresentationNotFound
	}
	return nil
}

var _ domain.RepresentationRepository = (*RepresentationRepository)(nil)
