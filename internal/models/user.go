package models

import "time"

// User is an account allowed to mutate the catalog.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	FullName  string    `json:"full_name" gorm:"type:varchar(255)" validate:"required,min=1,max=255"`
	Password  string    `gorm:"type:varchar(255)" validate:"required,min=6"` // no json tag; cleared before responses
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
