package category

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=workOrder asset part"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type" binding:"omitempty,oneof=workOrder asset part"`
}
