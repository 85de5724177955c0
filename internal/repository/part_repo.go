package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var p domain.Part
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartRepository) List(ctx context.Context) ([]domain.Part, error) {
	var parts []domain.Part
	if err := r.db.WithContext(ctx).Order("part_name").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *PartRepository) Update(ctx context.Context, p *domain.Part) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PartRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Part{}, id).Error
}

// DecrementStock applies "decrement by qty where available_quantity >= qty"
// as one conditional update. Two concurrent reservations can therefore never
// both observe sufficient stock and jointly over-draw it; the losing request
// sees applied == false. Reads followed by writes are not equivalent and must
// not replace this.
func (r *PartRepository) DecrementStock(ctx context.Context, partID int64, qty int) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Part{}).
		Where("id = ? AND available_quantity >= ?", partID, qty).
		UpdateColumn("available_quantity", gorm.Expr("available_quantity - ?", qty))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
