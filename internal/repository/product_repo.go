package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gocatalog/catalog-api/internal/models"
	"github.com/gocatalog/catalog-api/internal/utils"
)

const productColumns = `id, name, img_url, description, price, rating, category, status, likes, created_at, updated_at`

// ListFilter selects products by a single attribute. At most one filter is
// applied; precedence is Name, Category, Status, Price, Rating.
type ListFilter struct {
	Name     *string
	Category *string
	Status   *models.Status
	Price    *float64
	Rating   *float64
}

// ProductRepository handles product persistence against PostgreSQL.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product and fills the store-assigned id and audit
// timestamps on the passed entity.
func (r *ProductRepository) Create(p *models.Product) error {
	const q = `
		INSERT INTO products (name, img_url, description, price, rating, category, status, likes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns
	if err := r.db.Get(p, q, p.Name, p.ImgURL, p.Description, p.Price, p.Rating, p.Category, p.Status, p.Likes); err != nil {
		return &utils.PersistenceError{Op: "create product", Err: err}
	}
	return nil
}

// GetByID returns the product or (nil, nil) when the id does not exist.
// Absence is a valid, expected result, not an error.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &utils.PersistenceError{Op: "get product", Err: err}
	}
	return &p, nil
}

// Update overwrites all mutable fields of an existing product. It returns
// utils.ErrNotFound when the id does not exist.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
		UPDATE products
		SET name = $2, img_url = $3, description = $4, price = $5, rating = $6,
		    category = $7, status = $8, likes = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns
	if err := r.db.Get(p, q, p.ID, p.Name, p.ImgURL, p.Description, p.Price, p.Rating, p.Category, p.Status, p.Likes); err != nil {
		if err == sql.ErrNoRows {
			return utils.ErrNotFound
		}
		return &utils.PersistenceError{Op: "update product", Err: err}
	}
	return nil
}

// Delete removes the product if present. Deleting a non-existent id is a
// successful no-op.
func (r *ProductRepository) Delete(id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	if _, err := r.db.Exec(q, id); err != nil {
		return &utils.PersistenceError{Op: "delete product", Err: err}
	}
	return nil
}

// List returns products matching the filter, or all products when the filter
// is empty. Order follows the store default.
func (r *ProductRepository) List(f ListFilter) ([]models.Product, error) {
	q, args := buildListQuery(f)
	products := []models.Product{}
	if err := r.db.Select(&products, q, args...); err != nil {
		return nil, &utils.PersistenceError{Op: "list products", Err: err}
	}
	return products, nil
}

// Like atomically increments the likes counter and returns the updated
// product, or (nil, nil) when the id does not exist. The increment happens in
// the store so concurrent likes never lose updates.
func (r *ProductRepository) Like(id int) (*models.Product, error) {
	const q = `
		UPDATE products
		SET likes = likes + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &utils.PersistenceError{Op: "like product", Err: err}
	}
	return &p, nil
}

// buildListQuery renders the SELECT for List, applying at most one filter.
func buildListQuery(f ListFilter) (string, []interface{}) {
	base := `SELECT ` + productColumns + ` FROM products`
	switch {
	case f.Name != nil:
		return fmt.Sprintf("%s WHERE name = $1", base), []interface{}{*f.Name}
	case f.Category != nil:
		return fmt.Sprintf("%s WHERE category = $1", base), []interface{}{*f.Category}
	case f.Status != nil:
		return fmt.Sprintf("%s WHERE status = $1", base), []interface{}{*f.Status}
	case f.Price != nil:
		return fmt.Sprintf("%s WHERE price = $1", base), []interface{}{*f.Price}
	case f.Rating != nil:
		return fmt.Sprintf("%s WHERE rating = $1", base), []interface{}{*f.Rating}
	}
	return base, nil
}
