package repository

import (
	"context"

	"gorm.io/gorm"

	"cmms/internal/domain"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t *domain.Team) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	var t domain.Team
	if err := r.db.WithContext(ctx).Preload("Members").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) List(ctx context.Context, createdBy *int64) ([]domain.Team, error) {
	q := r.db.WithContext(ctx).Preload("Members")
	if createdBy != nil {
		q = q.Where("created_by = ?", *createdBy)
	}

	var teams []domain.Team
	if err := q.Order("name").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// FindIDsByMember returns the ids of every team the user belongs to. The
// visibility filter for technicians is built from this set.
func (r *TeamRepository) FindIDsByMember(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("user_id = ?", userID).
		Pluck("team_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// IsMember reports whether the user is on the team.
func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("team_members").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TeamRepository) Update(ctx context.Context, t *domain.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(t).Association("Members").Replace(t.Members); err != nil {
			return err
		}
		return tx.Omit("Members").Save(t).Error
	})
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM team_members WHERE team_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Team{}, id).Error
	})
}
