package service

import (
	"context"

	"github.com/gocatalog/catalog-api/internal/cache"
	"github.com/gocatalog/catalog-api/internal/models"
	"github.com/gocatalog/catalog-api/internal/repository"
)

// ProductStore abstracts product persistence so the service can run against
// the SQL repository in production and a test double in unit tests.
type ProductStore interface {
	Create(p *models.Product) error
	GetByID(id int) (*models.Product, error)
	Update(p *models.Product) error
	Delete(id int) error
	List(f repository.ListFilter) ([]models.Product, error)
	Like(id int) (*models.Product, error)
}

// ProductService implements the product lifecycle operations.
type ProductService struct {
	store         ProductStore
	cache         *cache.ProductCache // nil disables caching
	defaultStatus models.Status
}

// NewProductService constructs a ProductService. cache may be nil.
func NewProductService(store ProductStore, productCache *cache.ProductCache, defaultStatus models.Status) *ProductService {
	return &ProductService{
		store:         store,
		cache:         productCache,
		defaultStatus: defaultStatus,
	}
}

// ProductRequest is the request body for create and full-replace update.
// Pointer fields distinguish an omitted value from an explicit zero, so a
// missing price fails validation rather than defaulting to 0.
type ProductRequest struct {
	Name        string   `json:"name"`
	ImgURL      string   `json:"img_url"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Likes       *int     `json:"likes"`
}

// build materializes a Product from a request, applying defaults and running
// field validation. All failures are *models.ValidationError.
func (s *ProductService) build(req *ProductRequest) (*models.Product, error) {
	if req.Price == nil {
		return nil, &models.ValidationError{Field: "price", Message: "price is required"}
	}

	p := &models.Product{
		Name:        req.Name,
		ImgURL:      req.ImgURL,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.Likes != nil {
		p.Likes = *req.Likes
	}
	if req.Status != "" {
		status, err := models.ParseStatus(req.Status)
		if err != nil {
			return nil, err
		}
		p.Status = status
	}

	p.ApplyDefaults(s.defaultStatus)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Create validates the request and persists a new product. The returned
// entity carries the store-assigned id.
func (s *ProductService) Create(ctx context.Context, req *ProductRequest) (*models.Product, error) {
	p, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(p); err != nil {
		return nil, err
	}
	s.cache.Put(ctx, p)
	return p, nil
}

// Get retrieves a product by id, or (nil, nil) when absent.
func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	if p := s.cache.Get(ctx, id); p != nil {
		return p, nil
	}
	p, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, p)
	return p, nil
}

// Update fully replaces the product stored under id. The id itself is
// immutable; all other fields are overwritten. Returns utils.ErrNotFound
// (propagated from the store) when the id does not exist.
func (s *ProductService) Update(ctx context.Context, id int, req *ProductRequest) (*models.Product, error) {
	p, err := s.build(req)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.store.Update(p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	s.cache.Put(ctx, p)
	return p, nil
}

// Delete removes the product if present; deleting an absent id succeeds.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// List returns products matching the filter (all products for an empty
// filter), never nil on success.
func (s *ProductService) List(ctx context.Context, f repository.ListFilter) ([]models.Product, error) {
	return s.store.List(f)
}

// Like increments the likes counter by exactly one and returns the updated
// product, or (nil, nil) when the id does not exist.
func (s *ProductService) Like(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.store.Like(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	s.cache.Invalidate(ctx, id)
	s.cache.Put(ctx, p)
	return p, nil
}
