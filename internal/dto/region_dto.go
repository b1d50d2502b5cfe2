package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/models"
)

type RegionRequest struct {
	StoreID  uuid.UUID `json:"store_id" validate:"required"`
	Province string    `json:"province" validate:"required,max=50"`
	City     string    `json:"city" validate:"required,max=50"`
	District string    `json:"district" validate:"max=50"`
}

type RegionResponse struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	Province  string    `json:"province"`
	City      string    `json:"city"`
	District  string    `json:"district"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRegionResponse(r *models.Region) RegionResponse {
	return RegionResponse{
		ID:        r.ID,
		StoreID:   r.StoreID,
		Province:  r.Province,
		City:      r.City,
		District:  r.District,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
