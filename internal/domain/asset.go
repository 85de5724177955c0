package domain

import "time"

type AssetStatus string

const (
	AssetActive   AssetStatus = "Active"
	AssetInactive AssetStatus = "Inactive"
	AssetRetired  AssetStatus = "Retired"
)

type Asset struct {
	ID                 int64       `json:"id"`
	AssetName          string      `json:"assetName" validate:"required"`
	BuildingID         int64       `json:"building" validate:"required"`
	Category           string      `json:"category" validate:"required"`
	Description        string      `json:"description,omitempty"`
	Status             AssetStatus `json:"status"`
	SerialNumber       string      `json:"serialNumber,omitempty"`
	ModelNumber        string      `json:"modelNumber,omitempty"`
	Manufacturer       string      `json:"manufacturer,omitempty"`
	PurchaseDate       *time.Time  `json:"purchaseDate,omitempty"`
	PurchaseCost       float64     `json:"purchaseCost,omitempty" validate:"gte=0"`
	WarrantyExpiryDate *time.Time  `json:"warrantyExpiryDate,omitempty"`
	QRCode             string      `json:"qrCode" gorm:"uniqueIndex"`
	CreatedBy          int64       `json:"createdBy"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// AssetUsageHistory is an append-only log entry recorded once per work order
// that references an asset.
type AssetUsageHistory struct {
	ID          int64     `json:"id"`
	WorkOrderID int64     `json:"workOrderId" gorm:"index"`
	AssetID     int64     `json:"assetId" gorm:"index"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
