package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/principal"
)

// AddressService manages a user's saved delivery addresses. A user may keep
// at most models.MaxAddressesPerUser, each with a distinct label.
type AddressService struct {
	db *gorm.DB
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

func (s *AddressService) Add(actor principal.Principal, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", actor.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	var dup int64
	if err := s.db.Model(&models.DeliveryAddress{}).
		Where("user_id = ? AND address = ?", user.ID, req.Address).
		Count(&dup).Error; err != nil {
		return nil, fmt.Errorf("failed to check address: %w", err)
	}
	if dup > 0 {
		return nil, fmt.Errorf("%w : %s", ErrAddressExists, req.Address)
	}

	var count int64
	if err := s.db.Model(&models.DeliveryAddress{}).
		Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count addresses: %w", err)
	}
	if count >= models.MaxAddressesPerUser {
		return nil, ErrAddressLimit
	}

	addr := models.DeliveryAddress{
		ID:            uuid.New(),
		UserID:        user.ID,
		Address:       req.Address,
		AddressInfo:   req.AddressInfo,
		DetailAddress: req.DetailAddress,
	}

	if err := s.db.Create(&addr).Error; err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	resp := dto.NewAddressResponse(&addr)
	return &resp, nil
}

// List returns the actor's own addresses, oldest first.
func (s *AddressService) List(actor principal.Principal) ([]dto.AddressResponse, error) {
	var user models.User
	if err := s.db.Where("username = ?", actor.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	var addrs []models.DeliveryAddress
	if err := s.db.Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&addrs).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	out := make([]dto.AddressResponse, 0, len(addrs))
	for i := range addrs {
		out = append(out, dto.NewAddressResponse(&addrs[i]))
	}
	return out, nil
}

// Remove deletes one address. Only the owner or a MASTER may remove it.
func (s *AddressService) Remove(actor principal.Principal, id uuid.UUID) error {
	var addr models.DeliveryAddress
	if err := s.db.Where("id = ?", id).First(&addr).Error; err != nil {
		return fmt.Errorf("%w by id : %s", ErrAddressNotFound, id)
	}

	var owner models.User
	if err := s.db.Where("id = ?", addr.UserID).First(&owner).Error; err != nil {
		return fmt.Errorf("%w by id : %s", ErrAddressNotFound, id)
	}

	if owner.Username != actor.Username && actor.Role != models.RoleMaster {
		return ErrForbidden
	}

	return s.db.Delete(&addr).Error
}
