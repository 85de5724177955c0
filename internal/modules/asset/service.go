package asset

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

type Service struct {
	assets *repository.AssetRepository
	usage  *repository.AssetUsageRepository
}

func NewService(assets *repository.AssetRepository, usage *repository.AssetUsageRepository) *Service {
	return &Service{assets: assets, usage: usage}
}

func (s *Service) List(ctx context.Context, ident domain.Identity) ([]domain.Asset, error) {
	var createdBy *int64
	if ident.Role != domain.RoleAdmin {
		createdBy = &ident.UserID
	}
	return s.assets.List(ctx, createdBy)
}

func (s *Service) Get(ctx context.Context, ident domain.Identity, id int64) (*domain.Asset, error) {
	a, err := s.assets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ident.Role != domain.RoleAdmin && a.CreatedBy != ident.UserID {
		return nil, ErrForbidden
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, ident domain.Identity, req CreateAssetRequest) (*domain.Asset, error) {
	status := domain.AssetStatus(req.Status)
	if req.Status == "" {
		status = domain.AssetActive
	}

	a := &domain.Asset{
		AssetName:          req.AssetName,
		BuildingID:         req.Building,
		Category:           req.Category,
		Description:        req.Description,
		Status:             status,
		SerialNumber:       req.SerialNumber,
		ModelNumber:        req.ModelNumber,
		Manufacturer:       req.Manufacturer,
		PurchaseDate:       req.PurchaseDate,
		PurchaseCost:       req.PurchaseCost,
		WarrantyExpiryDate: req.WarrantyExpiryDate,
		QRCode:             uuid.NewString(),
		CreatedBy:          ident.UserID,
	}
	if err := s.assets.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, ident domain.Identity, id int64, req UpdateAssetRequest) (*domain.Asset, error) {
	a, err := s.Get(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	if req.AssetName != nil {
		a.AssetName = *req.AssetName
	}
	if req.Building != nil {
		a.BuildingID = *req.Building
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Status != nil {
		a.Status = domain.AssetStatus(*req.Status)
	}
	if req.SerialNumber != nil {
		a.SerialNumber = *req.SerialNumber
	}
	if req.ModelNumber != nil {
		a.ModelNumber = *req.ModelNumber
	}
	if req.Manufacturer != nil {
		a.Manufacturer = *req.Manufacturer
	}
	if req.PurchaseDate != nil {
		a.PurchaseDate = req.PurchaseDate
	}
	if req.PurchaseCost != nil {
		a.PurchaseCost = *req.PurchaseCost
	}
	if req.WarrantyExpiryDate != nil {
		a.WarrantyExpiryDate = req.WarrantyExpiryDate
	}

	if err := s.assets.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	if _, err := s.Get(ctx, ident, id); err != nil {
		return err
	}
	return s.assets.Delete(ctx, id)
}

// History returns the usage log recorded by work orders that referenced the
// asset, newest first.
func (s *Service) History(ctx context.Context, ident domain.Identity, id int64) ([]domain.AssetUsageHistory, error) {
	if _, err := s.Get(ctx, ident, id); err != nil {
		return nil, err
	}
	return s.usage.ListByAsset(ctx, id)
}
