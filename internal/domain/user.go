package domain

import "time"

// User is the identity-store record. The UID is assigned once at
// registration and referenced by value everywhere else.
type User struct {
	UID          string    `json:"uid" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Projects []Project `json:"-" gorm:"many2many:project_users;"`
}
