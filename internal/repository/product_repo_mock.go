package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/gocatalog/catalog-api/internal/models"
	"github.com/gocatalog/catalog-api/internal/utils"
)

// MockProductRepository is an in-memory implementation of the product store,
// used as a test double for service and handler tests. It mirrors the SQL
// repository's contract, including (nil, nil) for absent lookups and
// idempotent deletes.
type MockProductRepository struct {
	mu       sync.Mutex
	products map[int]models.Product
	nextID   int

	// FailWith, when set, makes every operation return this error. Used to
	// exercise persistence-failure paths.
	FailWith error
}

// NewMockProductRepository creates an empty in-memory repository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// Create assigns the next id and stores a copy of the product.
func (m *MockProductRepository) Create(p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	p.ID = m.nextID
	m.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.products[p.ID] = *p
	return nil
}

// GetByID returns a copy of the stored product or (nil, nil) when absent.
func (m *MockProductRepository) GetByID(id int) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Update overwrites an existing product or returns utils.ErrNotFound.
func (m *MockProductRepository) Update(p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	existing, ok := m.products[p.ID]
	if !ok {
		return utils.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	m.products[p.ID] = *p
	return nil
}

// Delete removes the product; absent ids are a successful no-op.
func (m *MockProductRepository) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	delete(m.products, id)
	return nil
}

// List returns products matching the filter in id order.
func (m *MockProductRepository) List(f ListFilter) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	out := []models.Product{}
	for _, p := range m.products {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Like increments the likes counter, or returns (nil, nil) when absent.
func (m *MockProductRepository) Like(id int) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	p.Likes++
	p.UpdatedAt = time.Now()
	m.products[id] = p
	return &p, nil
}

// matchesFilter applies the same single-dimension precedence as the SQL
// query builder.
func matchesFilter(p models.Product, f ListFilter) bool {
	switch {
	case f.Name != nil:
		return p.Name == *f.Name
	case f.Category != nil:
		return p.Category == *f.Category
	case f.Status != nil:
		return p.Status == *f.Status
	case f.Price != nil:
		return p.Price == *f.Price
	case f.Rating != nil:
		return p.Rating == *f.Rating
	}
	return true
}
