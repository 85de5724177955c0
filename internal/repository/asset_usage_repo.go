package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type AssetUsageRepository struct {
	db *gorm.DB
}

func NewAssetUsageRepository(db *gorm.DB) *AssetUsageRepository {
	return &AssetUsageRepository{db: db}
}

func (r *AssetUsageRepository) Append(ctx context.Context, h *domain.AssetUsageHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *AssetUsageRepository) ListByAsset(ctx context.Context, assetID int64) ([]domain.AssetUsageHistory, error) {
	var rows []domain.AssetUsageHistory
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
