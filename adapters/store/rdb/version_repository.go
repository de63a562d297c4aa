package rdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"gorm.io/gorm"
)

type VersionRepository struct{ db *gorm.DB }

func NewVersionRepository(db *gorm.DB) *VersionRepository { return &VersionRepository{db: db} }

func versionToRecord(v *model.Version) *VersionRecord {
	return &VersionRecord{ID: v.ID, AssetID: v.AssetID, Name: v.Name, Author: v.Author, Comment: v.Comment, CreatedAt: v.CreatedAt, UpdatedAt: v.UpdatedAt}
}

func versionToModel(r *VersionRecord) *model.Version {
	return &model.Version{ID: r.ID, AssetID: r.AssetID, Name: r.Name, Author: r.Author, Comment: r.Comment, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func (r *VersionRepository) Create(ctx context.Context, v *model.Version) error {
	rec := versionToRecord(v)
	if rec.ID == "" {
		rec.ID = "ver-" + uuid.NewString()
		v.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *VersionRepository) Get(ctx context.Context, id string) (*model.Version, error) {
	var rec VersionRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrVersionNotFound
		}
		return nil, err
	}
	return versionToModel(&rec), nil
}

func (r *VersionRepository) List(ctx context.Context) ([]*model.Version, error) {
	var recs []VersionRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return versionsToModels(recs), nil
}

func (r *VersionRepository) ListByAsset(ctx context.Context, assetID string) ([]*model.Version, error) {
	var recs []VersionRecord
	if err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Order("name ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return versionsToModels(recs), nil
}

// Latest is a find-one sorted by name descending.
func (r *VersionRepository) Latest(ctx context.Context, assetID string) (*model.Version, error) {
	var rec VersionRecord
	err := r.db.WithContext(ctx).Where("asset_id = ?", assetID).Order("name DESC").Order("id DESC").Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrVersionNotFound
		}
		return nil, err
	}
	return versionToModel(&rec), nil
}

func (r *VersionRepository) Update(ctx context.Context, v *model.Version) error {
	rec := versionToRecord(v)
	res := r.db.WithContext(ctx).Model(&VersionRecord{}).Where("id = ?", rec.ID).Select("*").Omit("id", "created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrVersionNotFound
	}
	return nil
}

func (r *VersionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&VersionRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrVersionNotFound
	}
	return nil
}

func versionsToModels(recs []VersionRecord) []*model.Version {
	out := make([]*model.Version, 0, len(recs))
	for i := range recs {
		out = append(out, versionToModel(&recs[i]))
	}
	return out
}

var _ domain.VersionRepository = (*VersionRepository)(nil)
