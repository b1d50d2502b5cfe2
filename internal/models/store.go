package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies a store.
type Category string

const (
	CategoryKorean   Category = "KOREAN"
	CategoryChinese  Category = "CHINESE"
	CategoryJapanese Category = "JAPANESE"
	CategoryWestern  Category = "WESTERN"
	CategoryChicken  Category = "CHICKEN"
	CategoryPizza    Category = "PIZZA"
	CategorySnack    Category = "SNACK"
	CategoryCafe     Category = "CAFE"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryKorean, CategoryChinese, CategoryJapanese, CategoryWestern,
		CategoryChicken, CategoryPizza, CategorySnack, CategoryCafe:
		return Category(s), true
	}
	return "", false
}

type Store struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	Address       string         `gorm:"size:255;not null" json:"address"`
	Status        bool           `gorm:"not null;default:true" json:"status"`
	Category      Category       `gorm:"size:20" json:"category"`
	OwnerUsername string         `gorm:"size:50;not null;index" json:"owner_username"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy     *string        `gorm:"size:50" json:"-"`

	Regions  []Region  `gorm:"foreignKey:StoreID" json:"regions,omitempty"`
	Products []Product `gorm:"foreignKey:StoreID" json:"-"`
}
