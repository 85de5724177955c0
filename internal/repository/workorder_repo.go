package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cmms/internal/domain"
)

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// WorkOrderFilter is the visibility predicate plus optional equality narrows.
// Zero-valued fields are not applied. Assignee fields, when set, build the
// "(assigned to me) OR (assigned to one of my teams)" branch for technicians.
type WorkOrderFilter struct {
	SubmittedBy     *int64
	AssigneeUserID  *int64
	AssigneeTeamIDs []int64

	Category   string
	Status     string
	Priority   string
	BuildingID *int64
}

func (r *WorkOrderRepository) Create(ctx context.Context, wo *domain.WorkOrder) error {
	for i := range wo.Tasks {
		wo.Tasks[i].Position = i
	}
	return r.db.WithContext(ctx).Create(wo).Error
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	var wo domain.WorkOrder
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Parts").
		First(&wo, id).Error
	if err != nil {
		return nil, err
	}
	return &wo, nil
}

func (r *WorkOrderRepository) FindByFilter(ctx context.Context, f WorkOrderFilter) ([]domain.WorkOrder, error) {
	q := r.db.WithContext(ctx).Model(&domain.WorkOrder{})

	if f.SubmittedBy != nil {
		q = q.Where("submitted_by = ?", *f.SubmittedBy)
	}
	if f.AssigneeUserID != nil {
		direct := r.db.Where("assignee_type = ? AND assigned_to = ?", domain.AssigneeUser, *f.AssigneeUserID)
		if len(f.AssigneeTeamIDs) > 0 {
			direct = direct.Or("assignee_type = ? AND assigned_to IN ?", domain.AssigneeTeam, f.AssigneeTeamIDs)
		}
		q = q.Where(direct)
	}

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.BuildingID != nil {
		q = q.Where("building_id = ?", *f.BuildingID)
	}

	var orders []domain.WorkOrder
	err := q.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Parts").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Update persists the work order's own columns. Task and part lines are
// replaced separately so an update that never touched them keeps the stored
// rows as they are.
func (r *WorkOrderRepository) Update(ctx context.Context, wo *domain.WorkOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(wo).Error
}

func (r *WorkOrderRepository) ReplaceTasks(ctx context.Context, workOrderID int64, tasks []domain.WorkOrderTask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", workOrderID).Delete(&domain.WorkOrderTask{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		for i := range tasks {
			tasks[i].ID = 0
			tasks[i].WorkOrderID = workOrderID
			tasks[i].Position = i
		}
		return tx.Create(&tasks).Error
	})
}

func (r *WorkOrderRepository) ReplaceParts(ctx context.Context, workOrderID int64, parts []domain.WorkOrderPart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", workOrderID).Delete(&domain.WorkOrderPart{}).Error; err != nil {
			return err
		}
		if len(parts) == 0 {
			return nil
		}
		for i := range parts {
			parts[i].ID = 0
			parts[i].WorkOrderID = workOrderID
		}
		return tx.Create(&parts).Error
	})
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_id = ?", id).Delete(&domain.WorkOrderTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("work_order_id = ?", id).Delete(&domain.WorkOrderPart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.WorkOrder{}, id).Error
	})
}
