package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

type Service struct {
	users *repository.UserRepository
}

func NewService(users *repository.UserRepository) *Service {
	return &Service{users: users}
}

// List shows admins everyone; managers only the users they provisioned.
func (s *Service) List(ctx context.Context, ident domain.Identity) ([]domain.User, error) {
	var createdBy *int64
	if ident.Role != domain.RoleAdmin {
		createdBy = &ident.UserID
	}

	users, err := s.users.List(ctx, createdBy)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, ident domain.Identity, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ident.Role != domain.RoleAdmin && (u.CreatedBy == nil || *u.CreatedBy != ident.UserID) {
		return nil, ErrForbidden
	}

	u.PasswordHash = ""
	return u, nil
}

// Create provisions an account under the calling manager. The new user
// inherits the manager's company.
func (s *Service) Create(ctx context.Context, ident domain.Identity, req CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.UserRole(req.UserRole)
	if role == "" {
		role = domain.RoleTechnician
	}

	creator := ident.UserID
	u := &domain.User{
		Email:             email,
		PasswordHash:      string(hash),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PhoneNumber:       req.PhoneNumber,
		JobTitle:          req.JobTitle,
		Role:              role,
		CompanyName:       ident.CompanyName,
		AlertNotification: req.AlertNotification,
		CreatedBy:         &creator,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Update(ctx context.Context, ident domain.Identity, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ident.Role != domain.RoleAdmin && (u.CreatedBy == nil || *u.CreatedBy != ident.UserID) {
		return nil, ErrForbidden
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = *req.PhoneNumber
	}
	if req.JobTitle != nil {
		u.JobTitle = *req.JobTitle
	}
	if req.UserRole != nil {
		u.Role = domain.UserRole(*req.UserRole)
	}
	if req.AlertNotification != nil {
		u.AlertNotification = *req.AlertNotification
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if ident.Role != domain.RoleAdmin && (u.CreatedBy == nil || *u.CreatedBy != ident.UserID) {
		return ErrForbidden
	}

	return s.users.Delete(ctx, id)
}
