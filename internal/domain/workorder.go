package domain

import "time"

type WorkOrderPriority string

const (
	PriorityLow    WorkOrderPriority = "Low"
	PriorityMedium WorkOrderPriority = "Medium"
	PriorityHigh   WorkOrderPriority = "High"
)

type WorkOrderStatus string

const (
	StatusOpen       WorkOrderStatus = "Open"
	StatusInProgress WorkOrderStatus = "In Progress"
	StatusCompleted  WorkOrderStatus = "Completed"
	StatusOnHold     WorkOrderStatus = "On Hold"
)

// AssigneeType is the stored discriminator for the polymorphic assignee
// reference. The API boundary speaks "Individual"/"Team"; the translation to
// this vocabulary happens exactly once, in the work order service.
type AssigneeType string

const (
	AssigneeUser AssigneeType = "User"
	AssigneeTeam AssigneeType = "Team"
)

type RecurringInterval string

const (
	RecurDaily      RecurringInterval = "Daily"
	RecurWeekly     RecurringInterval = "Weekly"
	RecurMonthly    RecurringInterval = "Every Month"
	RecurQuarterly  RecurringInterval = "Every 3 Months"
	RecurSemiAnnual RecurringInterval = "Every 6 Months"
	RecurYearly     RecurringInterval = "Every year"
)

func ValidRecurringInterval(v RecurringInterval) bool {
	switch v {
	case RecurDaily, RecurWeekly, RecurMonthly, RecurQuarterly, RecurSemiAnnual, RecurYearly:
		return true
	}
	return false
}

type WorkOrderTask struct {
	ID          int64  `json:"-" gorm:"primaryKey"`
	WorkOrderID int64  `json:"-" gorm:"index"`
	Position    int    `json:"-"`
	TaskName    string `json:"taskName" validate:"required"`
	TaskType    string `json:"taskType,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// WorkOrderPart is one reservation line. Duplicate part ids within a work
// order are kept as independent lines, not merged.
type WorkOrderPart struct {
	ID          int64 `json:"-" gorm:"primaryKey"`
	WorkOrderID int64 `json:"-" gorm:"index"`
	PartID      int64 `json:"partId" validate:"required"`
	Quantity    int   `json:"quantity" validate:"required,gte=1"`
}

type WorkOrder struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Priority     WorkOrderPriority  `json:"priority"`
	Status       WorkOrderStatus    `json:"status"`
	StartDate    time.Time          `json:"startDate"`
	DueDate      time.Time          `json:"dueDate"`
	BuildingID   int64              `json:"building"`
	AssetID      *int64             `json:"asset,omitempty"`
	VendorID     *int64             `json:"vendor,omitempty"`
	AssigneeType AssigneeType       `json:"assigneeType"`
	AssignedTo   int64              `json:"assignedTo"`
	IsRecurring  bool               `json:"isRecurring"`
	RecurringWO  *RecurringInterval `json:"recurringWO"`
	PhotoURL     string             `json:"photoUrl,omitempty"`
	Tasks        []WorkOrderTask    `json:"tasks" gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	Parts        []WorkOrderPart    `json:"parts" gorm:"foreignKey:WorkOrderID;constraint:OnDelete:CASCADE"`
	SubmittedBy  int64              `json:"submittedBy" gorm:"index"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}
