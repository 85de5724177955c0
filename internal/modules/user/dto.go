package user

type CreateUserRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=6"`
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	PhoneNumber       string `json:"phoneNumber"`
	JobTitle          string `json:"jobTitle"`
	UserRole          string `json:"userRole"`
	AlertNotification bool   `json:"alertNotification"`
}

type UpdateUserRequest struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	PhoneNumber       *string `json:"phoneNumber"`
	JobTitle          *string `json:"jobTitle"`
	UserRole          *string `json:"userRole"`
	AlertNotification *bool   `json:"alertNotification"`
}
