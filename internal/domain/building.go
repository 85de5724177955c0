package domain

import "time"

type Building struct {
	ID            int64     `json:"id"`
	BuildingName  string    `json:"buildingName" validate:"required" gorm:"uniqueIndex"`
	Address       string    `json:"address" validate:"required"`
	ContactPerson string    `json:"contactPerson" validate:"required"`
	ContactNumber string    `json:"contactNumber" validate:"required"`
	Email         string    `json:"email" validate:"required,email"`
	CreatedBy     int64     `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
