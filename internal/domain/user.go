package domain

import "time"

type UserRole string

const (
	RoleTechnician UserRole = "technician"
	RoleManager    UserRole = "manager"
	RoleAdmin      UserRole = "admin"
)

// Identity is the caller context resolved from the access token. It is passed
// explicitly into every service operation; services never read the caller out
// of ambient state.
type Identity struct {
	UserID      int64
	Role        UserRole
	CompanyName string
}

type User struct {
	ID                int64    `json:"id"`
	Email             string   `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash      string   `json:"-"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	PhoneNumber       string   `json:"phoneNumber,omitempty"`
	JobTitle          string   `json:"jobTitle,omitempty"`
	Role              UserRole `json:"userRole"`
	CompanyName       string   `json:"companyName,omitempty"`
	AlertNotification bool     `json:"alertNotification"`
	// CreatedBy is the manager who provisioned the account. Self-registered
	// managers and admins have no creator.
	CreatedBy *int64    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
