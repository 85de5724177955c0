package building

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

type Service struct {
	buildings *repository.BuildingRepository
}

func NewService(buildings *repository.BuildingRepository) *Service {
	return &Service{buildings: buildings}
}

func (s *Service) List(ctx context.Context) ([]domain.Building, error) {
	return s.buildings.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Building, error) {
	b, err := s.buildings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) Create(ctx context.Context, ident domain.Identity, req CreateBuildingRequest) (*domain.Building, error) {
	b := &domain.Building{
		BuildingName:  req.BuildingName,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		CreatedBy:     ident.UserID,
	}
	if err := s.buildings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateBuildingRequest) (*domain.Building, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BuildingName != nil {
		b.BuildingName = *req.BuildingName
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.ContactPerson != nil {
		b.ContactPerson = *req.ContactPerson
	}
	if req.ContactNumber != nil {
		b.ContactNumber = *req.ContactNumber
	}
	if req.Email != nil {
		b.Email = *req.Email
	}

	if err := s.buildings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.buildings.Delete(ctx, id)
}
