package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Region is an operating area a store delivers to.
type Region struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"store_id"`
	Province  string         `gorm:"size:50;not null" json:"province"`
	City      string         `gorm:"size:50;not null" json:"city"`
	District  string         `gorm:"size:50" json:"district"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy *string        `gorm:"size:50" json:"-"`

	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
