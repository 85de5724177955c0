package part

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

// Service covers the parts catalog. Restocking happens through plain updates
// here; the guarded stock decrement belongs to the work order reservation
// flow, not this module.
type Service struct {
	parts *repository.PartRepository
}

func NewService(parts *repository.PartRepository) *Service {
	return &Service{parts: parts}
}

func (s *Service) List(ctx context.Context) ([]domain.Part, error) {
	return s.parts.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Part, error) {
	p, err := s.parts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreatePartRequest) (*domain.Part, error) {
	p := &domain.Part{
		PartName:          req.PartName,
		PartNumber:        req.PartNumber,
		CategoryID:        req.Category,
		BarCode:           req.BarCode,
		AvailableQuantity: req.AvailableQuantity,
		BuildingID:        req.Building,
		Description:       req.Description,
		ManufacturerID:    req.Manufacturer,
		PurchaseDate:      req.PurchaseDate,
		PurchaseCost:      req.PurchaseCost,
		QRCode:            req.QRCode,
	}
	if err := s.parts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePartRequest) (*domain.Part, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PartName != nil {
		p.PartName = *req.PartName
	}
	if req.PartNumber != nil {
		p.PartNumber = *req.PartNumber
	}
	if req.Category != nil {
		p.CategoryID = *req.Category
	}
	if req.BarCode != nil {
		p.BarCode = *req.BarCode
	}
	if req.AvailableQuantity != nil {
		p.AvailableQuantity = *req.AvailableQuantity
	}
	if req.Building != nil {
		p.BuildingID = *req.Building
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Manufacturer != nil {
		p.ManufacturerID = req.Manufacturer
	}
	if req.PurchaseDate != nil {
		p.PurchaseDate = req.PurchaseDate
	}
	if req.PurchaseCost != nil {
		p.PurchaseCost = *req.PurchaseCost
	}
	if req.QRCode != nil {
		p.QRCode = *req.QRCode
	}

	if err := s.parts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.parts.Delete(ctx, id)
}
