package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	var v domain.Vendor
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) List(ctx context.Context, createdBy *int64) ([]domain.Vendor, error) {
	q := r.db.WithContext(ctx).Model(&domain.Vendor{})
	if createdBy != nil {
		q = q.Where("created_by = ?", *createdBy)
	}

	var vendors []domain.Vendor
	if err := q.Order("vendor_name").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *VendorRepository) Update(ctx context.Context, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VendorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Vendor{}, id).Error
}
