package domain

import "time"

type Vendor struct {
	ID           int64     `json:"id"`
	VendorName   string    `json:"vendorName" validate:"required" gorm:"uniqueIndex"`
	VendorType   string    `json:"vendorType" validate:"required"`
	Price        float64   `json:"price" validate:"gte=0"`
	Address      string    `json:"address" validate:"required"`
	Website      string    `json:"website,omitempty"`
	ContactName  string    `json:"contactName" validate:"required"`
	ContactPhone string    `json:"contactPhone" validate:"required"`
	ContactEmail string    `json:"contactEmail" validate:"required,email"`
	Description  string    `json:"description,omitempty"`
	CreatedBy    int64     `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
