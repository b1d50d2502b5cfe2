package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sparat-2NE1/delivery/internal/models"
)

type ProductRequest struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Description string         `json:"description"`
	Price       int64          `json:"price" validate:"required,gt=0"`
	Options     datatypes.JSON `json:"options"`
}

type ProductResponse struct {
	ID          uuid.UUID      `json:"id"`
	StoreID     uuid.UUID      `json:"store_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Options     datatypes.JSON `json:"options"`
	Hidden      bool           `json:"hidden"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Options:     p.Options,
		Hidden:      p.Hidden,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
