package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns users scoped to a creator when createdBy is non-nil.
func (r *UserRepository) List(ctx context.Context, createdBy *int64) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	if createdBy != nil {
		q = q.Where("created_by = ?", *createdBy)
	}

	var users []domain.User
	if err := q.Order("first_name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.User{}, id).Error
}

// CountByIDsAndRole reports how many of the given users exist with the role.
func (r *UserRepository) CountByIDsAndRole(ctx context.Context, ids []int64, role domain.UserRole) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id IN ? AND role = ?", ids, role).
		Count(&n).Error
	return n, err
}
