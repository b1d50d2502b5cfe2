package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/models"
)

type AddressRequest struct {
	Address       string `json:"address" validate:"required,max=255"`
	AddressInfo   string `json:"address_info" validate:"required,max=255"`
	DetailAddress string `json:"detail_address" validate:"max=255"`
}

type AddressResponse struct {
	ID            uuid.UUID `json:"id"`
	Address       string    `json:"address"`
	AddressInfo   string    `json:"address_info"`
	DetailAddress string    `json:"detail_address"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewAddressResponse(a *models.DeliveryAddress) AddressResponse {
	return AddressResponse{
		ID:            a.ID,
		Address:       a.Address,
		AddressInfo:   a.AddressInfo,
		DetailAddress: a.DetailAddress,
		CreatedAt:     a.CreatedAt,
	}
}
