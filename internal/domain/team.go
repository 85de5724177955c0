package domain

import "time"

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Members   []User    `json:"members,omitempty" gorm:"many2many:team_members"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
