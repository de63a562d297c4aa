package rdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"gorm.io/gorm"
)

type AssetRepository struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) *AssetRepository { return &AssetRepository{db: db} }

func assetToRecord(a *model.Asset) (*AssetRecord, error) {
	tasks, err := encodeJSON(a.Tasks)
	if err != nil {
		return nil, err
	}
	return &AssetRecord{ID: a.ID, ProjectID: a.ProjectID, Name: a.Name, Silo: a.Silo, Tasks: tasks, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}, nil
}

func assetToModel(r *AssetRecord) (*model.Asset, error) {
	a := &model.Asset{ID: r.ID, ProjectID: r.ProjectID, Name: r.Name, Silo: r.Silo, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
	if err := decodeJSON(r.Tasks, &a.Tasks); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AssetRepository) Create(ctx context.Context, a *model.Asset) error {
	rec, err := assetToRecord(a)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = "ast-" + uuid.NewString()
		a.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *AssetRepository) Get(ctx context.Context, id string) (*model.Asset, error) {
	var rec AssetRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAssetNotFound
		}
		return nil, err
	}
	return assetToModel(&rec)
}

func (r *AssetRepository) List(ctx context.Context) ([]*model.Asset, error) {
	var recs []AssetRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Asset, 0, len(recs))
	for i := range recs {
		a, err := assetToModel(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AssetRepository) Update(ctx context.Context, a *model.Asset) error {
	rec, err := assetToRecord(a)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&AssetRecord{}).Where("id = ?", rec.ID).Select("*").Omit("id", "created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&AssetRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrAssetNotFound
	}
	return nil
}

var _ domain.AssetRepository = (*AssetRepository)(nil)
