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

// ProductService manages a store's menu. Product names are unique among the
// store's active products; a removed product frees its name.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) AddToStore(storeID uuid.UUID, actor principal.Principal, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	var store models.Store
	if err := s.db.Where("id = ?", storeID).First(&store).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrStoreNotFound, storeID)
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return nil, ErrForbidden
	}

	var dup int64
	if err := s.db.Model(&models.Product{}).
		Where("store_id = ? AND name = ?", storeID, req.Name).
		Count(&dup).Error; err != nil {
		return nil, fmt.Errorf("failed to check product name: %w", err)
	}
	if dup > 0 {
		return nil, fmt.Errorf("%w : %s", ErrProductExists, req.Name)
	}

	product := models.Product{
		ID:          uuid.New(),
		StoreID:     storeID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Options:     req.Options,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	resp := dto.NewProductResponse(&product)
	return &resp, nil
}

func (s *ProductService) GetByID(id uuid.UUID) (*dto.ProductResponse, error) {
	var product models.Product
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, fmt.Errorf("%w by id : %s", ErrProductNotFound, id)
	}

	resp := dto.NewProductResponse(&product)
	return &resp, nil
}

// List returns all visible products, sorted by the same allow-list rules as
// the user search (createdAt/updatedAt/deletedAt; "desc" or default asc).
func (s *ProductService) List(page, size int, sortBy, order string) (*dto.Page[dto.ProductResponse], error) {
	orderClause, err := search.OrderBy(sortBy, order)
	if err != nil {
		return nil, err
	}

	query := s.db.Model(&models.Product{}).Where("hidden = false")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := s.db.Where("hidden = false").
		Order(orderClause).
		Scopes(search.Paginate(page, size)).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	content := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		content = append(content, dto.NewProductResponse(&products[i]))
	}

	return &dto.Page[dto.ProductResponse]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
	}, nil
}

func (s *ProductService) Update(id uuid.UUID, actor principal.Principal, req *dto.ProductRequest) (*dto.ProductResponse, error) {
	product, store, err := s.loadWithStore(id)
	if err != nil {
		return nil, err
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return nil, ErrForbidden
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Options != nil {
		product.Options = req.Options
	}

	if err := s.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// SetHidden toggles menu visibility without deleting the row.
func (s *ProductService) SetHidden(id uuid.UUID, actor principal.Principal, hidden bool) error {
	product, store, err := s.loadWithStore(id)
	if err != nil {
		return err
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return ErrForbidden
	}

	return s.db.Model(product).Update("hidden", hidden).Error
}

func (s *ProductService) SoftDelete(id uuid.UUID, actor principal.Principal) error {
	product, store, err := s.loadWithStore(id)
	if err != nil {
		return err
	}

	if store.OwnerUsername != actor.Username && actor.Role != models.RoleMaster {
		return ErrForbidden
	}

	return s.db.Delete(product).Error
}

func (s *ProductService) loadWithStore(id uuid.UUID) (*models.Product, *models.Store, error) {
	var product models.Product
	if err := s.db.Where("id = ?", id).First(&product).Error; err != nil {
		return nil, nil, fmt.Errorf("%w by id : %s", ErrProductNotFound, id)
	}

	var store models.Store
	if err := s.db.Where("id = ?", product.StoreID).First(&store).Error; err != nil {
		return nil, nil, fmt.Errorf("%w by id : %s", ErrStoreNotFound, product.StoreID)
	}

	return &product, &store, nil
}
