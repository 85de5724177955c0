package workorder

import (
	"context"

	"cmms/internal/domain"
	"cmms/internal/repository"
)

// WorkOrderRepository defines the persistence operations of the lifecycle
// controller.
type WorkOrderRepository interface {
	Create(ctx context.Context, wo *domain.WorkOrder) error
	GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error)
	FindByFilter(ctx context.Context, f repository.WorkOrderFilter) ([]domain.WorkOrder, error)
	Update(ctx context.Context, wo *domain.WorkOrder) error
	ReplaceTasks(ctx context.Context, workOrderID int64, tasks []domain.WorkOrderTask) error
	ReplaceParts(ctx context.Context, workOrderID int64, parts []domain.WorkOrderPart) error
	Delete(ctx context.Context, id int64) error
}

// PartRepository is the slice of the parts store the reservation engine needs.
// DecrementStock must be a single conditional update on the store, never a
// read followed by a write.
type PartRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Part, error)
	DecrementStock(ctx context.Context, partID int64, qty int) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type TeamRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	FindIDsByMember(ctx context.Context, userID int64) ([]int64, error)
	IsMember(ctx context.Context, teamID, userID int64) (bool, error)
}

type AssetUsageRepository interface {
	Append(ctx context.Context, h *domain.AssetUsageHistory) error
}
