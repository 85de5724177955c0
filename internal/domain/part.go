package domain

import "time"

type Part struct {
	ID         int64  `json:"id"`
	PartName   string `json:"partName" validate:"required"`
	PartNumber string `json:"partNumber,omitempty"`
	CategoryID int64  `json:"category" validate:"required"`
	BarCode    string `json:"barCode,omitempty"`
	// AvailableQuantity is the only value in the system mutated by more than
	// one actor; it is only ever changed through a guarded decrement and must
	// never go negative.
	AvailableQuantity int        `json:"availableQuantity" validate:"gte=0"`
	BuildingID        int64      `json:"building" validate:"required"`
	Description       string     `json:"description,omitempty"`
	ManufacturerID    *int64     `json:"manufacturer,omitempty"`
	PurchaseDate      *time.Time `json:"purchaseDate,omitempty"`
	PurchaseCost      float64    `json:"purchaseCost,omitempty" validate:"gte=0"`
	QRCode            string     `json:"qrCode,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
