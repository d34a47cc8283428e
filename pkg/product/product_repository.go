package product

import (
	"context"
	"strings"

	"SmartCart-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetAllProducts(ctx context.Context) ([]*entities.Product, error)
		SearchProducts(ctx context.Context, query string) ([]*entities.Product, error)
		GetProductsByCategory(ctx context.Context, category string) ([]*entities.Product, error)
		GetCategories(ctx context.Context) ([]string, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetAllProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts matches query as a case-insensitive substring of the name,
// description or barcode.
func (r *productRepository) SearchProducts(ctx context.Context, query string) ([]*entities.Product, error) {
	var products []*entities.Product
	pattern := "%" + strings.ToLower(query) + "%"

	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(barcode) LIKE ?", pattern, pattern, pattern).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetProductsByCategory(ctx context.Context, category string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategories returns the category of every product, sorted and with
// repeats.
func (r *productRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Product{}).
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
