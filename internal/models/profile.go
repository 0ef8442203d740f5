package models

import (
	"time"
)

// Profile represents a local user identity
type Profile struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName string `gorm:"not null;unique" json:"full_name"`
	Role     string `gorm:"default:employee" json:"role"` // employee, supervisor, admin
	Timezone string `json:"timezone"`
	IsActive bool   `gorm:"default:false" json:"is_active"` // the signed-in profile
}
