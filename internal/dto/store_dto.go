package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sparat-2NE1/delivery/internal/models"
)

type StoreRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Address  string `json:"address" validate:"required,max=255"`
	Category string `json:"category" validate:"required"`
	Status   *bool  `json:"status"`
}

type StoreResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Status        bool            `json:"status"`
	Category      models.Category `json:"category"`
	OwnerUsername string          `json:"owner_username"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewStoreResponse(s *models.Store) StoreResponse {
	return StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		Status:        s.Status,
		Category:      s.Category,
		OwnerUsername: s.OwnerUsername,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
