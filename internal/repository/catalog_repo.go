package repository

import (
	"github.com/kavyamehta/vastra/internal/domain"
)

// CatalogRepository holds the static built-in catalog, the final rung
// of the search degradation ladder
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a catalog repository
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Seed replaces the catalog contents with the built-in product set
func (r *CatalogRepository) Seed(products []domain.CatalogProduct) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM catalog_products`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO catalog_products
			(id, name, price, original_price, image, rating, reviews, brand, category, location, discount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.Exec(
			p.ID, p.Name, p.Price, p.OriginalPrice, p.Image,
			p.Rating, p.Reviews, p.Brand, p.Category, p.Location, p.Discount,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// All returns every catalog product
func (r *CatalogRepository) All() ([]domain.CatalogProduct, error) {
	return r.query(`SELECT id, name, price, original_price, image, rating, reviews,
		brand, category, location, discount FROM catalog_products ORDER BY id`)
}

// Search filters the catalog by a case-insensitive match against name,
// brand and category
func (r *CatalogRepository) Search(q string) ([]domain.CatalogProduct, error) {
	pattern := "%" + q + "%"
	return r.query(`SELECT id, name, price, original_price, image, rating, reviews,
		brand, category, location, discount FROM catalog_products
		WHERE name LIKE ? COLLATE NOCASE
		   OR brand LIKE ? COLLATE NOCASE
		   OR category LIKE ? COLLATE NOCASE
		ORDER BY id`, pattern, pattern, pattern)
}

// ByCategory returns the catalog products in one category
func (r *CatalogRepository) ByCategory(category string) ([]domain.CatalogProduct, error) {
	return r.query(`SELECT id, name, price, original_price, image, rating, reviews,
		brand, category, location, discount FROM catalog_products
		WHERE category = ? COLLATE NOCASE ORDER BY id`, category)
}

// Categories returns the distinct catalog categories
func (r *CatalogRepository) Categories() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT category FROM catalog_products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Count returns the number of catalog products
func (r *CatalogRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM catalog_products`).Scan(&count)
	return count, err
}

func (r *CatalogRepository) query(sqlText string, args ...any) ([]domain.CatalogProduct, error) {
	rows, err := r.db.Query(sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.CatalogProduct
	for rows.Next() {
		var p domain.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Image,
			&p.Rating, &p.Reviews, &p.Brand, &p.Category, &p.Location, &p.Discount); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
