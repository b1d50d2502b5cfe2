package models

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryAddress is one of a user's saved delivery destinations. The label
// is unique per user and each user may keep at most MaxAddressesPerUser rows.
type DeliveryAddress struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_addresses_user_label" json:"user_id"`
	Address       string    `gorm:"size:255;not null;uniqueIndex:idx_addresses_user_label" json:"address"`
	AddressInfo   string    `gorm:"size:255" json:"address_info"`
	DetailAddress string    `gorm:"size:255" json:"detail_address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MaxAddressesPerUser caps how many delivery addresses a single user can keep.
const MaxAddressesPerUser = 3
