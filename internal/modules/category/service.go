package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

type Service struct {
	categories *repository.CategoryRepository
}

func NewService(categories *repository.CategoryRepository) *Service {
	return &Service{categories: categories}
}

func (s *Service) List(ctx context.Context, categoryType string) ([]domain.Category, error) {
	return s.categories.List(ctx, categoryType)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	cat := &domain.Category{
		Name: req.Name,
		Type: domain.CategoryType(req.Type),
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, translateUniqueViolation(err)
	}
	return cat, nil
}

// translateUniqueViolation maps a unique-index failure on the name column to
// ErrNameTaken. Postgres reports 23505; the sqlite driver surfaces
// gorm.ErrDuplicatedKey.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrNameTaken
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrNameTaken
	}
	return err
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Type != nil {
		cat.Type = domain.CategoryType(*req.Type)
	}

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, translateUniqueViolation(err)
	}
	return cat, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}
