package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *domain.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	var a domain.Asset
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepository) List(ctx context.Context, createdBy *int64) ([]domain.Asset, error) {
	q := r.db.WithContext(ctx).Model(&domain.Asset{})
	if createdBy != nil {
		q = q.Where("created_by = ?", *createdBy)
	}

	var assets []domain.Asset
	if err := q.Order("asset_name").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetRepository) Update(ctx context.Context, a *domain.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Asset{}, id).Error
}
