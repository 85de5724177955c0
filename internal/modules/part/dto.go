package part

import "time"

type CreatePartRequest struct {
	PartName          string     `json:"partName" binding:"required"`
	PartNumber        string     `json:"partNumber"`
	Category          int64      `json:"category" binding:"required"`
	BarCode           string     `json:"barCode"`
	AvailableQuantity int        `json:"availableQuantity" binding:"gte=0"`
	Building          int64      `json:"building" binding:"required"`
	Description       string     `json:"description"`
	Manufacturer      *int64     `json:"manufacturer"`
	PurchaseDate      *time.Time `json:"purchaseDate"`
	PurchaseCost      float64    `json:"purchaseCost" binding:"gte=0"`
	QRCode            string     `json:"qrCode"`
}

type UpdatePartRequest struct {
	PartName          *string    `json:"partName"`
	PartNumber        *string    `json:"partNumber"`
	Category          *int64     `json:"category"`
	BarCode           *string    `json:"barCode"`
	AvailableQuantity *int       `json:"availableQuantity" binding:"omitempty,gte=0"`
	Building          *int64     `json:"building"`
	Description       *string    `json:"description"`
	Manufacturer      *int64     `json:"manufacturer"`
	PurchaseDate      *time.Time `json:"purchaseDate"`
	PurchaseCost      *float64   `json:"purchaseCost" binding:"omitempty,gte=0"`
	QRCode            *string    `json:"qrCode"`
}
