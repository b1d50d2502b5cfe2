package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sparat-2NE1/delivery/internal/dto"
	"github.com/sparat-2NE1/delivery/internal/models"
	"github.com/sparat-2NE1/delivery/internal/principal"
	"github.com/sparat-2NE1/delivery/internal/search"
)

// RegionService manages the operating areas stores deliver to.
type RegionService struct {
	db *gorm.DB
}

func NewRegionService(db *gorm.DB) *RegionService {
	return &RegionService{db: db}
}

func (s *RegionService) Create(actor principal.Principal, req *dto.RegionRequest) (*dto.RegionResponse, error) {
	var store models.Store
	if err := s.db.Where("id = ?", req.StoreID).First(&store).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrStoreNotFound, req.StoreID)
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return nil, ErrForbidden
	}

	region := models.Region{
		ID:       uuid.New(),
		StoreID:  req.StoreID,
		Province: req.Province,
		City:     req.City,
		District: req.District,
	}

	if err := s.db.Create(&region).Error; err != nil {
		return nil, fmt.Errorf("failed to create region: %w", err)
	}

	resp := dto.NewRegionResponse(&region)
	return &resp, nil
}

func (s *RegionService) ListByStore(storeID uuid.UUID, page, size int) (*dto.Page[dto.RegionResponse], error) {
	return s.paginate(s.db.Model(&models.Region{}).Where("store_id = ?", storeID), page, size)
}

func (s *RegionService) ListAll(page, size int) (*dto.Page[dto.RegionResponse], error) {
	return s.paginate(s.db.Model(&models.Region{}), page, size)
}

// Search matches the keyword against province, city and district,
// case-insensitive.
func (s *RegionService) Search(keyword string, page, size int) (*dto.Page[dto.RegionResponse], error) {
	like := "%" + strings.ToLower(keyword) + "%"
	query := s.db.Model(&models.Region{}).
		Where("LOWER(province) LIKE ? OR LOWER(city) LIKE ? OR LOWER(district) LIKE ?", like, like, like)
	return s.paginate(query, page, size)
}

func (s *RegionService) Update(id uuid.UUID, actor principal.Principal, req *dto.RegionRequest) (*dto.RegionResponse, error) {
	region, store, err := s.loadWithStore(id)
	if err != nil {
		return nil, err
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return nil, ErrForbidden
	}

	region.Province = req.Province
	region.City = req.City
	region.District = req.District

	if err := s.db.Save(region).Error; err != nil {
		return nil, fmt.Errorf("failed to update region: %w", err)
	}

	resp := dto.NewRegionResponse(region)
	return &resp, nil
}

// SoftDelete marks the region deleted and records the deleting actor.
func (s *RegionService) SoftDelete(id uuid.UUID, actor principal.Principal) error {
	region, store, err := s.loadWithStore(id)
	if err != nil {
		return err
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(region).Update("deleted_by", actor.Username).Error; err != nil {
			return err
		}
		return tx.Delete(region).Error
	})
}

func (s *RegionService) paginate(query *gorm.DB, page, size int) (*dto.Page[dto.RegionResponse], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count regions: %w", err)
	}

	var regions []models.Region
	if err := query.Order("created_at DESC").
		Scopes(search.Paginate(page, size)).
		Find(&regions).Error; err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	content := make([]dto.RegionResponse, 0, len(regions))
	for i := range regions {
		content = append(content, dto.NewRegionResponse(&regions[i]))
	}

	return &dto.Page[dto.RegionResponse]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
	}, nil
}

func (s *RegionService) loadWithStore(id uuid.UUID) (*models.Region, *models.Store, error) {
	var region models.Region
	if err := s.db.Where("id = ?", id).First(&region).Error; err != nil {
		return nil, nil, fmt.Errorf("%w by id : %s", ErrRegionNotFound, id)
	}

	var store models.Store
	if err := s.db.Where("id = ?", region.StoreID).First(&store).Error; err != nil {
		return nil, nil, fmt.Errorf("%w by id : %s", ErrStoreNotFound, region.StoreID)
	}

	return &region, &store, nil
}
