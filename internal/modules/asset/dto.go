package asset

import "time"

type CreateAssetRequest struct {
	AssetName          string     `json:"assetName" binding:"required"`
	Building           int64      `json:"building" binding:"required"`
	Category           string     `json:"category" binding:"required"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	SerialNumber       string     `json:"serialNumber"`
	ModelNumber        string     `json:"modelNumber"`
	Manufacturer       string     `json:"manufacturer"`
	PurchaseDate       *time.Time `json:"purchaseDate"`
	PurchaseCost       float64    `json:"purchaseCost" binding:"gte=0"`
	WarrantyExpiryDate *time.Time `json:"warrantyExpiryDate"`
}

type UpdateAssetRequest struct {
	AssetName          *string    `json:"assetName"`
	Building           *int64     `json:"building"`
	Category           *string    `json:"category"`
	Description        *string    `json:"description"`
	Status             *string    `json:"status"`
	SerialNumber       *string    `json:"serialNumber"`
	ModelNumber        *string    `json:"modelNumber"`
	Manufacturer       *string    `json:"manufacturer"`
	PurchaseDate       *time.Time `json:"purchaseDate"`
	PurchaseCost       *float64   `json:"purchaseCost" binding:"omitempty,gte=0"`
	WarrantyExpiryDate *time.Time `json:"warrantyExpiryDate"`
}
