package workorder

import "time"

type TaskInput struct {
	TaskName    string `json:"taskName" binding:"required"`
	TaskType    string `json:"taskType"`
	IsCompleted bool   `json:"isCompleted"`
}

type PartLineInput struct {
	PartID   int64 `json:"partId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gte=1"`
}

type CreateWorkOrderRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Priority     string          `json:"priority"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	Building     int64           `json:"building" binding:"required"`
	Asset        *int64          `json:"asset"`
	Vendor       *int64          `json:"vendor"`
	AssigneeType string          `json:"assigneeType" binding:"required"`
	AssignedTo   int64           `json:"assignedTo" binding:"required"`
	IsRecurring  bool            `json:"isRecurring"`
	RecurringWO  *string         `json:"recurringWO"`
	PhotoURL     string          `json:"photoUrl"`
	Tasks        []TaskInput     `json:"tasks" binding:"omitempty,dive"`
	Parts        []PartLineInput `json:"parts" binding:"omitempty,dive"`
}

// UpdateWorkOrderRequest carries only the fields the caller actually sent;
// absent fields stay nil and are never applied. The field-authorization gate
// works off ChangedFields, so the JSON names here must match the stored
// wire vocabulary exactly.
type UpdateWorkOrderRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	Priority     *string          `json:"priority"`
	Status       *string          `json:"status"`
	StartDate    *time.Time       `json:"startDate"`
	DueDate      *time.Time       `json:"dueDate"`
	Building     *int64           `json:"building"`
	Asset        *int64           `json:"asset"`
	Vendor       *int64           `json:"vendor"`
	AssigneeType *string          `json:"assigneeType"`
	AssignedTo   *int64           `json:"assignedTo"`
	IsRecurring  *bool            `json:"isRecurring"`
	RecurringWO  *string          `json:"recurringWO"`
	PhotoURL     *string          `json:"photoUrl"`
	Tasks        *[]TaskInput     `json:"tasks" binding:"omitempty,dive"`
	Parts        *[]PartLineInput `json:"parts" binding:"omitempty,dive"`
}

// ChangedFields lists the wire names of every field present in the request.
func (r *UpdateWorkOrderRequest) ChangedFields() []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}

	add("title", r.Title != nil)
	add("description", r.Description != nil)
	add("category", r.Category != nil)
	add("priority", r.Priority != nil)
	add("status", r.Status != nil)
	add("startDate", r.StartDate != nil)
	add("dueDate", r.DueDate != nil)
	add("building", r.Building != nil)
	add("asset", r.Asset != nil)
	add("vendor", r.Vendor != nil)
	add("assigneeType", r.AssigneeType != nil)
	add("assignedTo", r.AssignedTo != nil)
	add("isRecurring", r.IsRecurring != nil)
	add("recurringWO", r.RecurringWO != nil)
	add("photoUrl", r.PhotoURL != nil)
	add("tasks", r.Tasks != nil)
	add("parts", r.Parts != nil)

	return fields
}

// ListFilters are the optional equality narrows applied after the role
// predicate. They can only tighten visibility, never widen it.
type ListFilters struct {
	Category string
	Status   string
	Priority string
	Building *int64
}
