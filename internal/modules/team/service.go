package team

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

type Service struct {
	teams *repository.TeamRepository
	users *repository.UserRepository
}

func NewService(teams *repository.TeamRepository, users *repository.UserRepository) *Service {
	return &Service{teams: teams, users: users}
}

func (s *Service) List(ctx context.Context, ident domain.Identity) ([]domain.Team, error) {
	var createdBy *int64
	if ident.Role != domain.RoleAdmin {
		createdBy = &ident.UserID
	}
	return s.teams.List(ctx, createdBy)
}

func (s *Service) Get(ctx context.Context, ident domain.Identity, id int64) (*domain.Team, error) {
	t, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ident.Role != domain.RoleAdmin && t.CreatedBy != ident.UserID {
		return nil, ErrForbidden
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, ident domain.Identity, req CreateTeamRequest) (*domain.Team, error) {
	members, err := s.resolveMembers(ctx, req.Members)
	if err != nil {
		return nil, err
	}

	t := &domain.Team{
		Name:      req.Name,
		Members:   members,
		CreatedBy: ident.UserID,
	}
	if err := s.teams.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.teams.GetByID(ctx, t.ID)
}

func (s *Service) Update(ctx context.Context, ident domain.Identity, id int64, req UpdateTeamRequest) (*domain.Team, error) {
	t, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ident.Role != domain.RoleAdmin && t.CreatedBy != ident.UserID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Members != nil {
		members, err := s.resolveMembers(ctx, *req.Members)
		if err != nil {
			return nil, err
		}
		t.Members = members
	}

	if err := s.teams.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.teams.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	t, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if ident.Role != domain.RoleAdmin && t.CreatedBy != ident.UserID {
		return ErrForbidden
	}

	return s.teams.Delete(ctx, id)
}

// resolveMembers checks that every member id exists and refers to a
// technician; managers and admins cannot be placed on a team.
func (s *Service) resolveMembers(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	technicians, err := s.users.CountByIDsAndRole(ctx, ids, domain.RoleTechnician)
	if err != nil {
		return nil, err
	}

	members := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownMembers
			}
			return nil, err
		}
		members = append(members, *u)
	}

	if technicians != int64(len(ids)) {
		return nil, ErrNonTechnician
	}
	return members, nil
}
