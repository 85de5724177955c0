package workorder

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

// assigneeKindFromInput translates the caller-facing assignee vocabulary into
// the stored discriminator. This is the only place the mapping lives; call
// sites must not reimplement it.
func assigneeKindFromInput(v string) (domain.AssigneeType, error) {
	switch v {
	case "Individual":
		return domain.AssigneeUser, nil
	case "Team":
		return domain.AssigneeTeam, nil
	}
	return "", &ValidationError{Field: "assigneeType", Reason: "must be Individual or Team"}
}

// writableFields is the per-role capability table consulted by the
// field-authorization gate. Roles without an entry may write every field once
// the ownership check passes.
var writableFields = map[domain.UserRole]map[string]bool{
	domain.RoleTechnician: {
		"status": true,
		"tasks":  true,
	},
}

type Service struct {
	workOrders WorkOrderRepository
	parts      PartRepository
	users      UserRepository
	teams      TeamRepository
	history    AssetUsageRepository
}

func NewService(
	workOrders WorkOrderRepository,
	parts PartRepository,
	users UserRepository,
	teams TeamRepository,
	history AssetUsageRepository,
) *Service {
	return &Service{
		workOrders: workOrders,
		parts:      parts,
		users:      users,
		teams:      teams,
		history:    history,
	}
}

// visibilityFilter computes the role predicate for enumeration. Admins see
// everything, managers what they submitted, technicians what is assigned to
// them directly or through one of their teams.
func (s *Service) visibilityFilter(ctx context.Context, ident domain.Identity) (repository.WorkOrderFilter, error) {
	var f repository.WorkOrderFilter

	switch ident.Role {
	case domain.RoleAdmin:
	case domain.RoleManager:
		f.SubmittedBy = &ident.UserID
	case domain.RoleTechnician:
		teamIDs, err := s.teams.FindIDsByMember(ctx, ident.UserID)
		if err != nil {
			return f, err
		}
		f.AssigneeUserID = &ident.UserID
		f.AssigneeTeamIDs = teamIDs
	default:
		return f, ErrForbidden
	}

	return f, nil
}

func (s *Service) List(ctx context.Context, ident domain.Identity, filters ListFilters) ([]domain.WorkOrder, error) {
	f, err := s.visibilityFilter(ctx, ident)
	if err != nil {
		return nil, err
	}

	f.Category = filters.Category
	f.Status = filters.Status
	f.Priority = filters.Priority
	f.BuildingID = filters.Building

	return s.workOrders.FindByFilter(ctx, f)
}

// Get distinguishes a record that does not exist (ErrNotFound) from one the
// caller may not see (ErrForbidden).
func (s *Service) Get(ctx context.Context, ident domain.Identity, id int64) (*domain.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.canView(ctx, ident, wo)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}
	return wo, nil
}

func (s *Service) canView(ctx context.Context, ident domain.Identity, wo *domain.WorkOrder) (bool, error) {
	switch ident.Role {
	case domain.RoleAdmin:
		return true, nil
	case domain.RoleManager:
		return wo.SubmittedBy == ident.UserID, nil
	case domain.RoleTechnician:
		return s.isAssignee(ctx, ident.UserID, wo)
	}
	return false, nil
}

func (s *Service) isAssignee(ctx context.Context, userID int64, wo *domain.WorkOrder) (bool, error) {
	if wo.AssigneeType == domain.AssigneeUser {
		return wo.AssignedTo == userID, nil
	}
	return s.teams.IsMember(ctx, wo.AssignedTo, userID)
}

// resolveAssignee validates the target entity behind the discriminator and
// returns the stored kind.
func (s *Service) resolveAssignee(ctx context.Context, typeInput string, assignedTo int64) (domain.AssigneeType, error) {
	kind, err := assigneeKindFromInput(typeInput)
	if err != nil {
		return "", err
	}

	switch kind {
	case domain.AssigneeUser:
		if _, err := s.users.GetByID(ctx, assignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", &ReferenceNotFoundError{Kind: string(domain.AssigneeUser), ID: assignedTo}
			}
			return "", err
		}
	case domain.AssigneeTeam:
		if _, err := s.teams.GetByID(ctx, assignedTo); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", &ReferenceNotFoundError{Kind: string(domain.AssigneeTeam), ID: assignedTo}
			}
			return "", err
		}
	}

	return kind, nil
}

func (s *Service) Create(ctx context.Context, ident domain.Identity, req CreateWorkOrderRequest) (*domain.WorkOrder, error) {
	if ident.Role != domain.RoleManager && ident.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	priority, err := validatePriority(req.Priority)
	if err != nil {
		return nil, err
	}
	if !req.DueDate.After(req.StartDate) {
		return nil, &ValidationError{Field: "dueDate", Reason: "must be after startDate"}
	}
	recurringWO, err := validateRecurrence(req.IsRecurring, req.RecurringWO)
	if err != nil {
		return nil, err
	}

	kind, err := s.resolveAssignee(ctx, req.AssigneeType, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	wo := &domain.WorkOrder{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Priority:     priority,
		Status:       domain.StatusOpen,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		BuildingID:   req.Building,
		AssetID:      req.Asset,
		VendorID:     req.Vendor,
		AssigneeType: kind,
		AssignedTo:   req.AssignedTo,
		IsRecurring:  req.IsRecurring,
		RecurringWO:  recurringWO,
		PhotoURL:     req.PhotoURL,
		Tasks:        tasksFromInput(req.Tasks),
		Parts:        partsFromInput(req.Parts),
		SubmittedBy:  ident.UserID,
	}

	if err := s.workOrders.Create(ctx, wo); err != nil {
		return nil, err
	}

	// The record is persisted before stock is reserved. A failed reservation
	// therefore leaves the order in place with no inventory committed; the
	// caller is expected to compensate with a delete.
	if err := s.reserveParts(ctx, wo.Parts); err != nil {
		return nil, err
	}

	if wo.AssetID != nil {
		h := &domain.AssetUsageHistory{
			WorkOrderID: wo.ID,
			AssetID:     *wo.AssetID,
			Description: wo.Description,
		}
		if err := s.history.Append(ctx, h); err != nil {
			return nil, err
		}
	}

	return wo, nil
}

// reserveParts walks the lines in input order and stops at the first failure.
// Duplicate part ids are independent draws; lines are never merged. Each line
// is applied through a single conditional decrement on the store, so two
// concurrent requests can never jointly over-draw a part.
func (s *Service) reserveParts(ctx context.Context, lines []domain.WorkOrderPart) error {
	for _, line := range lines {
		applied, err := s.parts.DecrementStock(ctx, line.PartID, line.Quantity)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		part, err := s.parts.GetByID(ctx, line.PartID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceNotFoundError{Kind: "Part", ID: line.PartID}
			}
			return err
		}
		return &InsufficientStockError{
			PartID:    part.ID,
			PartName:  part.PartName,
			Available: part.AvailableQuantity,
			Requested: line.Quantity,
		}
	}
	return nil
}

func (s *Service) Update(ctx context.Context, ident domain.Identity, id int64, req UpdateWorkOrderRequest) (*domain.WorkOrder, error) {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.authorizeMutation(ctx, ident, wo, req.ChangedFields()); err != nil {
		return nil, err
	}

	// Assignment changes only when both halves arrive together; one without
	// the other keeps the existing assignee.
	if req.AssigneeType != nil && req.AssignedTo != nil {
		kind, err := s.resolveAssignee(ctx, *req.AssigneeType, *req.AssignedTo)
		if err != nil {
			return nil, err
		}
		wo.AssigneeType = kind
		wo.AssignedTo = *req.AssignedTo
	}

	if err := applyScalarFields(wo, req); err != nil {
		return nil, err
	}

	if !wo.DueDate.After(wo.StartDate) {
		return nil, &ValidationError{Field: "dueDate", Reason: "must be after startDate"}
	}
	if _, err := validateRecurrenceState(wo.IsRecurring, wo.RecurringWO); err != nil {
		return nil, err
	}

	if err := s.workOrders.Update(ctx, wo); err != nil {
		return nil, err
	}
	if req.Tasks != nil {
		if err := s.workOrders.ReplaceTasks(ctx, wo.ID, tasksFromInput(*req.Tasks)); err != nil {
			return nil, err
		}
	}
	if req.Parts != nil {
		// Part lines may be edited after creation, but stock is only ever
		// reserved at creation time; updates do not re-reserve.
		if err := s.workOrders.ReplaceParts(ctx, wo.ID, partsFromInput(*req.Parts)); err != nil {
			return nil, err
		}
	}

	return s.workOrders.GetByID(ctx, wo.ID)
}

// authorizeMutation is the field-authorization gate. Ownership is checked
// first, then the proposed field set is tested against the role's capability
// table; one disallowed field rejects the whole mutation.
func (s *Service) authorizeMutation(ctx context.Context, ident domain.Identity, wo *domain.WorkOrder, fields []string) error {
	switch ident.Role {
	case domain.RoleAdmin:
	case domain.RoleManager:
		if wo.SubmittedBy != ident.UserID {
			return ErrForbidden
		}
	case domain.RoleTechnician:
		ok, err := s.isAssignee(ctx, ident.UserID, wo)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	allowed, restricted := writableFields[ident.Role]
	if !restricted {
		return nil
	}
	for _, f := range fields {
		if !allowed[f] {
			return ErrForbidden
		}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ident domain.Identity, id int64) error {
	wo, err := s.workOrders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	switch ident.Role {
	case domain.RoleAdmin:
	case domain.RoleManager:
		if wo.SubmittedBy != ident.UserID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	// Stock consumed at creation stays consumed; returning parts to inventory
	// is a separate workflow.
	return s.workOrders.Delete(ctx, id)
}

func applyScalarFields(wo *domain.WorkOrder, req UpdateWorkOrderRequest) error {
	if req.Title != nil {
		wo.Title = *req.Title
	}
	if req.Description != nil {
		wo.Description = *req.Description
	}
	if req.Category != nil {
		wo.Category = *req.Category
	}
	if req.Priority != nil {
		p, err := validatePriority(*req.Priority)
		if err != nil {
			return err
		}
		wo.Priority = p
	}
	if req.Status != nil {
		st, err := validateStatus(*req.Status)
		if err != nil {
			return err
		}
		wo.Status = st
	}
	if req.StartDate != nil {
		wo.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		wo.DueDate = *req.DueDate
	}
	if req.Building != nil {
		wo.BuildingID = *req.Building
	}
	if req.Asset != nil {
		wo.AssetID = req.Asset
	}
	if req.Vendor != nil {
		wo.VendorID = req.Vendor
	}
	if req.IsRecurring != nil {
		wo.IsRecurring = *req.IsRecurring
	}
	if req.RecurringWO != nil {
		v := domain.RecurringInterval(*req.RecurringWO)
		if !domain.ValidRecurringInterval(v) {
			return &ValidationError{Field: "recurringWO", Reason: "invalid recurrence interval"}
		}
		wo.RecurringWO = &v
	}
	if req.PhotoURL != nil {
		wo.PhotoURL = *req.PhotoURL
	}
	return nil
}

func validatePriority(v string) (domain.WorkOrderPriority, error) {
	if v == "" {
		return domain.PriorityMedium, nil
	}
	switch p := domain.WorkOrderPriority(v); p {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		return p, nil
	}
	return "", &ValidationError{Field: "priority", Reason: "must be Low, Medium, or High"}
}

func validateStatus(v string) (domain.WorkOrderStatus, error) {
	switch st := domain.WorkOrderStatus(v); st {
	case domain.StatusOpen, domain.StatusInProgress, domain.StatusCompleted, domain.StatusOnHold:
		return st, nil
	}
	return "", &ValidationError{Field: "status", Reason: "must be Open, In Progress, Completed, or On Hold"}
}

func validateRecurrence(isRecurring bool, recurringWO *string) (*domain.RecurringInterval, error) {
	if recurringWO == nil {
		if isRecurring {
			return nil, &ValidationError{Field: "recurringWO", Reason: "required when isRecurring is true"}
		}
		return nil, nil
	}

	v := domain.RecurringInterval(*recurringWO)
	if !domain.ValidRecurringInterval(v) {
		return nil, &ValidationError{Field: "recurringWO", Reason: "invalid recurrence interval"}
	}
	return &v, nil
}

func validateRecurrenceState(isRecurring bool, recurringWO *domain.RecurringInterval) (*domain.RecurringInterval, error) {
	if isRecurring && recurringWO == nil {
		return nil, &ValidationError{Field: "recurringWO", Reason: "required when isRecurring is true"}
	}
	return recurringWO, nil
}

func tasksFromInput(in []TaskInput) []domain.WorkOrderTask {
	tasks := make([]domain.WorkOrderTask, 0, len(in))
	for i, t := range in {
		tasks = append(tasks, domain.WorkOrderTask{
			Position:    i,
			TaskName:    t.TaskName,
			TaskType:    t.TaskType,
			IsCompleted: t.IsCompleted,
		})
	}
	return tasks
}

func partsFromInput(in []PartLineInput) []domain.WorkOrderPart {
	parts := make([]domain.WorkOrderPart, 0, len(in))
	for _, p := range in {
		parts = append(parts, domain.WorkOrderPart{
			PartID:   p.PartID,
			Quantity: p.Quantity,
		})
	}
	return parts
}
