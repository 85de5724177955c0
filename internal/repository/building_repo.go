package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type BuildingRepository struct {
	db *gorm.DB
}

func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

func (r *BuildingRepository) Create(ctx context.Context, b *domain.Building) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BuildingRepository) GetByID(ctx context.Context, id int64) (*domain.Building, error) {
	var b domain.Building
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BuildingRepository) List(ctx context.Context) ([]domain.Building, error) {
	var buildings []domain.Building
	if err := r.db.WithContext(ctx).Order("building_name").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}

func (r *BuildingRepository) Update(ctx context.Context, b *domain.Building) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BuildingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Building{}, id).Error
}
