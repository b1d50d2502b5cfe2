package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/search"
)

// StoreService manages stores. Creation is restricted to MANAGER and MASTER
// at the route level; mutations additionally require the actor to own the
// store or be a MASTER.
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

func (s *StoreService) Create(actor principal.Principal, req *dto.StoreRequest) (*dto.StoreResponse, error) {
	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, req.Category)
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	store := models.Store{
		ID:            uuid.New(),
		Name:          req.Name,
		Address:       req.Address,
		Status:        status,
		Category:      category,
		OwnerUsername: actor.Username,
	}

	if err := s.db.Create(&store).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	resp := dto.NewStoreResponse(&store)
	return &resp, nil
}

func (s *StoreService) GetByID(id uuid.UUID) (*dto.StoreResponse, error) {
	var store models.Store
	if err := s.db.Where("id = ?", id).First(&store).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrStoreNotFound, id)
	}

	resp := dto.NewStoreResponse(&store)
	return &resp, nil
}

func (s *StoreService) List(page, size int) (*dto.Page[dto.StoreResponse], error) {
	var total int64
	if err := s.db.Model(&models.Store{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count stores: %w", err)
	}

	var stores []models.Store
	if err := s.db.Order("created_at DESC").
		Scopes(search.Paginate(page, size)).
		Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	content := make([]dto.StoreResponse, 0, len(stores))
	for i := range stores {
		content = append(content, dto.NewStoreResponse(&stores[i]))
	}

	return &dto.Page[dto.StoreResponse]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
	}, nil
}

func (s *StoreService) Update(id uuid.UUID, actor principal.Principal, req *dto.StoreRequest) (*dto.StoreResponse, error) {
	var store models.Store
	if err := s.db.Where("id = ?", id).First(&store).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrStoreNotFound, id)
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return nil, ErrForbidden
	}

	category, ok := models.ParseCategory(req.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, req.Category)
	}

	store.Name = req.Name
	store.Address = req.Address
	store.Category = category
	if req.Status != nil {
		store.Status = *req.Status
	}

	if err := s.db.Save(&store).Error; err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	resp := dto.NewStoreResponse(&store)
	return &resp, nil
}

// SoftDelete marks the store deleted and records the deleting actor.
func (s *StoreService) SoftDelete(id uuid.UUID, actor principal.Principal) error {
	var store models.Store
	if err := s.db.Where("id = ?", id).First(&store).Error; err != nil {
		return fmt.Errorf("%w by id : %s", ErrStoreNotFound, id)
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&store).Update("deleted_by", actor.Username).Error; err != nil {
			return err
		}
		return tx.Delete(&store).Error
	})
}
