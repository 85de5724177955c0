package building

type CreateBuildingRequest struct {
	BuildingName  string `json:"buildingName" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactPerson string `json:"contactPerson" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

type UpdateBuildingRequest struct {
	BuildingName  *string `json:"buildingName"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email" validate:"omitempty,email"`
}
