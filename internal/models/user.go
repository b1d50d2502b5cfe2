package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account on the platform. Username is immutable and globally
// unique, including rows that have been soft-deleted: the unique index spans
// every row, so a deleted username can never be re-registered.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Nickname  string         `gorm:"size:50" json:"nickname"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"size:20;not null;default:'CUSTOMER'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy *string        `gorm:"size:50" json:"-"`

	Addresses []DeliveryAddress `gorm:"foreignKey:UserID" json:"-"`
}
