package workorder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

// Mock repositories
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) Create(ctx context.Context, wo *domain.WorkOrder) error {
	args := m.Called(ctx, wo)
	if wo != nil {
		wo.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockWorkOrderRepository) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindByFilter(ctx context.Context, f repository.WorkOrderFilter) ([]domain.WorkOrder, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *domain.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) ReplaceTasks(ctx context.Context, workOrderID int64, tasks []domain.WorkOrderTask) error {
	args := m.Called(ctx, workOrderID, tasks)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) ReplaceParts(ctx context.Context, workOrderID int64, parts []domain.WorkOrderPart) error {
	args := m.Called(ctx, workOrderID, parts)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPartRepository struct {
	mock.Mock
}

func (m *MockPartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartRepository) DecrementStock(ctx context.Context, partID int64, qty int) (bool, error) {
	args := m.Called(ctx, partID, qty)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) FindIDsByMember(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockTeamRepository) IsMember(ctx context.Context, teamID, userID int64) (bool, error) {
	args := m.Called(ctx, teamID, userID)
	return args.Bool(0), args.Error(1)
}

type MockAssetUsageRepository struct {
	mock.Mock
}

func (m *MockAssetUsageRepository) Append(ctx context.Context, h *domain.AssetUsageHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func newTestService() (*Service, *MockWorkOrderRepository, *MockPartRepository, *MockUserRepository, *MockTeamRepository, *MockAssetUsageRepository) {
	workOrders := new(MockWorkOrderRepository)
	parts := new(MockPartRepository)
	users := new(MockUserRepository)
	teams := new(MockTeamRepository)
	history := new(MockAssetUsageRepository)
	return NewService(workOrders, parts, users, teams, history), workOrders, parts, users, teams, history
}

func managerIdent(id int64) domain.Identity {
	return domain.Identity{UserID: id, Role: domain.RoleManager}
}

func validCreateRequest() CreateWorkOrderRequest {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return CreateWorkOrderRequest{
		Title:        "Quarterly HVAC service",
		Description:  "Replace filters",
		Category:     "HVAC",
		Priority:     "High",
		StartDate:    start,
		DueDate:      start.AddDate(0, 0, 7),
		Building:     1,
		AssigneeType: "Individual",
		AssignedTo:   42,
	}
}

func TestService_List_ManagerSeesOnlyOwnSubmissions(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	workOrders.On("FindByFilter", mock.Anything, mock.MatchedBy(func(f repository.WorkOrderFilter) bool {
		return f.SubmittedBy != nil && *f.SubmittedBy == int64(7) && f.AssigneeUserID == nil
	})).Return([]domain.WorkOrder{}, nil)

	_, err := service.List(context.Background(), managerIdent(7), ListFilters{})

	assert.NoError(t, err)
	workOrders.AssertExpectations(t)
}

func TestService_List_TechnicianFilterIncludesTeams(t *testing.T) {
	service, workOrders, _, _, teams, _ := newTestService()

	teams.On("FindIDsByMember", mock.Anything, int64(3)).Return([]int64{11, 12}, nil)
	workOrders.On("FindByFilter", mock.Anything, mock.MatchedBy(func(f repository.WorkOrderFilter) bool {
		return f.AssigneeUserID != nil && *f.AssigneeUserID == int64(3) &&
			len(f.AssigneeTeamIDs) == 2 && f.SubmittedBy == nil
	})).Return([]domain.WorkOrder{}, nil)

	ident := domain.Identity{UserID: 3, Role: domain.RoleTechnician}
	_, err := service.List(context.Background(), ident, ListFilters{})

	assert.NoError(t, err)
	workOrders.AssertExpectations(t)
}

func TestService_Get_NotFound(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	workOrders.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Get(context.Background(), managerIdent(7), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get_ForeignManagerForbidden(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	wo := &domain.WorkOrder{ID: 5, SubmittedBy: 1, AssigneeType: domain.AssigneeUser, AssignedTo: 3}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)

	_, err := service.Get(context.Background(), managerIdent(7), 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Get_TechnicianViaTeamMembership(t *testing.T) {
	service, workOrders, _, _, teams, _ := newTestService()

	wo := &domain.WorkOrder{ID: 5, SubmittedBy: 1, AssigneeType: domain.AssigneeTeam, AssignedTo: 11}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)
	teams.On("IsMember", mock.Anything, int64(11), int64(3)).Return(true, nil)

	ident := domain.Identity{UserID: 3, Role: domain.RoleTechnician}
	got, err := service.Get(context.Background(), ident, 5)

	assert.NoError(t, err)
	assert.Equal(t, wo, got)
}

func TestService_Create_ReservesStockAndLogsAssetUsage(t *testing.T) {
	service, workOrders, parts, users, _, history := newTestService()

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42, Role: domain.RoleTechnician}, nil)
	workOrders.On("Create", mock.Anything, mock.Anything).Return(nil)
	parts.On("DecrementStock", mock.Anything, int64(10), 2).Return(true, nil)
	history.On("Append", mock.Anything, mock.MatchedBy(func(h *domain.AssetUsageHistory) bool {
		return h.WorkOrderID == int64(999) && h.AssetID == int64(55)
	})).Return(nil)

	req := validCreateRequest()
	assetID := int64(55)
	req.Asset = &assetID
	req.Parts = []PartLineInput{{PartID: 10, Quantity: 2}}

	wo, err := service.Create(context.Background(), managerIdent(7), req)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, wo.Status)
	assert.Equal(t, domain.AssigneeUser, wo.AssigneeType)
	assert.Equal(t, int64(7), wo.SubmittedBy)
	history.AssertNumberOfCalls(t, "Append", 1)
	parts.AssertExpectations(t)
}

func TestService_Create_InsufficientStock(t *testing.T) {
	service, workOrders, parts, users, _, history := newTestService()

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	workOrders.On("Create", mock.Anything, mock.Anything).Return(nil)
	parts.On("DecrementStock", mock.Anything, int64(10), 5).Return(false, nil)
	parts.On("GetByID", mock.Anything, int64(10)).Return(&domain.Part{
		ID: 10, PartName: "Fan Belt A42", AvailableQuantity: 3,
	}, nil)

	req := validCreateRequest()
	req.Parts = []PartLineInput{{PartID: 10, Quantity: 5}}

	_, err := service.Create(context.Background(), managerIdent(7), req)

	var stockErr *InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Fan Belt A42", stockErr.PartName)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 5, stockErr.Requested)
	history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestService_Create_StopsAtFirstFailingLine(t *testing.T) {
	service, workOrders, parts, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	workOrders.On("Create", mock.Anything, mock.Anything).Return(nil)
	parts.On("DecrementStock", mock.Anything, int64(10), 1).Return(true, nil)
	parts.On("DecrementStock", mock.Anything, int64(11), 4).Return(false, nil)
	parts.On("GetByID", mock.Anything, int64(11)).Return(&domain.Part{
		ID: 11, PartName: "HEPA Filter", AvailableQuantity: 1,
	}, nil)

	req := validCreateRequest()
	req.Parts = []PartLineInput{
		{PartID: 10, Quantity: 1},
		{PartID: 11, Quantity: 4},
		{PartID: 12, Quantity: 1},
	}

	_, err := service.Create(context.Background(), managerIdent(7), req)

	var stockErr *InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(11), stockErr.PartID)
	parts.AssertNotCalled(t, "DecrementStock", mock.Anything, int64(12), 1)
}

func TestService_Create_DuplicatePartLinesDrawIndependently(t *testing.T) {
	service, workOrders, parts, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	workOrders.On("Create", mock.Anything, mock.Anything).Return(nil)
	parts.On("DecrementStock", mock.Anything, int64(10), 2).Return(true, nil)

	req := validCreateRequest()
	req.Parts = []PartLineInput{
		{PartID: 10, Quantity: 2},
		{PartID: 10, Quantity: 2},
	}

	_, err := service.Create(context.Background(), managerIdent(7), req)

	assert.NoError(t, err)
	parts.AssertNumberOfCalls(t, "DecrementStock", 2)
}

func TestService_Create_UnknownPartIsReferenceError(t *testing.T) {
	service, workOrders, parts, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{ID: 42}, nil)
	workOrders.On("Create", mock.Anything, mock.Anything).Return(nil)
	parts.On("DecrementStock", mock.Anything, int64(88), 1).Return(false, nil)
	parts.On("GetByID", mock.Anything, int64(88)).Return(nil, gorm.ErrRecordNotFound)

	req := validCreateRequest()
	req.Parts = []PartLineInput{{PartID: 88, Quantity: 1}}

	_, err := service.Create(context.Background(), managerIdent(7), req)

	var refErr *ReferenceNotFoundError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "Part", refErr.Kind)
	assert.Equal(t, int64(88), refErr.ID)
}

func TestService_Create_UnknownAssigneeRejectedBeforePersist(t *testing.T) {
	service, workOrders, _, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), managerIdent(7), validCreateRequest())

	var refErr *ReferenceNotFoundError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "User", refErr.Kind)
	workOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_TechnicianForbidden(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	ident := domain.Identity{UserID: 3, Role: domain.RoleTechnician}
	_, err := service.Create(context.Background(), ident, validCreateRequest())

	assert.ErrorIs(t, err, ErrForbidden)
	workOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DueDateMustFollowStartDate(t *testing.T) {
	service, _, _, _, _, _ := newTestService()

	req := validCreateRequest()
	req.DueDate = req.StartDate

	_, err := service.Create(context.Background(), managerIdent(7), req)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "dueDate", valErr.Field)
}

func TestService_Create_RecurringRequiresInterval(t *testing.T) {
	service, _, _, _, _, _ := newTestService()

	req := validCreateRequest()
	req.IsRecurring = true

	_, err := service.Create(context.Background(), managerIdent(7), req)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "recurringWO", valErr.Field)
}

func TestService_Update_TechnicianMayChangeStatusAndTasks(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	wo := &domain.WorkOrder{
		ID: 5, SubmittedBy: 1,
		AssigneeType: domain.AssigneeUser, AssignedTo: 3,
		StartDate: start, DueDate: start.AddDate(0, 0, 7),
		Status: domain.StatusOpen,
	}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)
	workOrders.On("Update", mock.Anything, mock.Anything).Return(nil)
	workOrders.On("ReplaceTasks", mock.Anything, int64(5), mock.Anything).Return(nil)

	status := "In Progress"
	tasks := []TaskInput{{TaskName: "Swap filters", IsCompleted: true}}
	req := UpdateWorkOrderRequest{Status: &status, Tasks: &tasks}

	ident := domain.Identity{UserID: 3, Role: domain.RoleTechnician}
	got, err := service.Update(context.Background(), ident, 5, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	workOrders.AssertExpectations(t)
}

func TestService_Update_TechnicianRejectedOnForeignField(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	wo := &domain.WorkOrder{
		ID: 5, SubmittedBy: 1,
		AssigneeType: domain.AssigneeUser, AssignedTo: 3,
	}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)

	status := "In Progress"
	title := "Renamed"
	req := UpdateWorkOrderRequest{Status: &status, Title: &title}

	ident := domain.Identity{UserID: 3, Role: domain.RoleTechnician}
	_, err := service.Update(context.Background(), ident, 5, req)

	// one field outside the allowance rejects the whole mutation
	assert.ErrorIs(t, err, ErrForbidden)
	workOrders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_UnassignedTechnicianForbidden(t *testing.T) {
	service, workOrders, _, _, teams, _ := newTestService()

	wo := &domain.WorkOrder{
		ID: 5, SubmittedBy: 1,
		AssigneeType: domain.AssigneeTeam, AssignedTo: 11,
	}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)
	teams.On("IsMember", mock.Anything, int64(11), int64(3)).Return(false, nil)

	status := "Completed"
	req := UpdateWorkOrderRequest{Status: &status}

	ident := domain.Identity{UserID: 3, Role: domain.RoleTechnician}
	_, err := service.Update(context.Background(), ident, 5, req)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update_ReassignmentNeedsBothHalves(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	wo := &domain.WorkOrder{
		ID: 5, SubmittedBy: 7,
		AssigneeType: domain.AssigneeUser, AssignedTo: 42,
		StartDate: start, DueDate: start.AddDate(0, 0, 7),
	}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)
	workOrders.On("Update", mock.Anything, mock.MatchedBy(func(w *domain.WorkOrder) bool {
		return w.AssignedTo == int64(42) && w.AssigneeType == domain.AssigneeUser
	})).Return(nil)

	newType := "Team"
	req := UpdateWorkOrderRequest{AssigneeType: &newType}

	_, err := service.Update(context.Background(), managerIdent(7), 5, req)

	assert.NoError(t, err)
	workOrders.AssertExpectations(t)
}

func TestService_Update_PartEditsDoNotReserveStock(t *testing.T) {
	service, workOrders, parts, _, _, _ := newTestService()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	wo := &domain.WorkOrder{
		ID: 5, SubmittedBy: 7,
		AssigneeType: domain.AssigneeUser, AssignedTo: 42,
		StartDate: start, DueDate: start.AddDate(0, 0, 7),
	}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)
	workOrders.On("Update", mock.Anything, mock.Anything).Return(nil)
	workOrders.On("ReplaceParts", mock.Anything, int64(5), mock.Anything).Return(nil)

	lines := []PartLineInput{{PartID: 10, Quantity: 4}}
	req := UpdateWorkOrderRequest{Parts: &lines}

	_, err := service.Update(context.Background(), managerIdent(7), 5, req)

	assert.NoError(t, err)
	parts.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_ForeignManagerForbidden(t *testing.T) {
	service, workOrders, _, _, _, _ := newTestService()

	wo := &domain.WorkOrder{ID: 5, SubmittedBy: 1}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)

	err := service.Delete(context.Background(), managerIdent(7), 5)

	assert.ErrorIs(t, err, ErrForbidden)
	workOrders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_DoesNotTouchStock(t *testing.T) {
	service, workOrders, parts, _, _, _ := newTestService()

	wo := &domain.WorkOrder{
		ID: 5, SubmittedBy: 7,
		Parts: []domain.WorkOrderPart{{PartID: 10, Quantity: 2}},
	}
	workOrders.On("GetByID", mock.Anything, int64(5)).Return(wo, nil)
	workOrders.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := service.Delete(context.Background(), managerIdent(7), 5)

	assert.NoError(t, err)
	parts.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	parts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
