package domain

import "time"

type CategoryType string

const (
	CategoryWorkOrder CategoryType = "workOrder"
	CategoryAsset     CategoryType = "asset"
	CategoryPart      CategoryType = "part"
)

type Category struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name" validate:"required" gorm:"uniqueIndex"`
	Type      CategoryType `json:"type" validate:"required,oneof=workOrder asset part"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
