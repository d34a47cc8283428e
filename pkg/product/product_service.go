package product

import (
	"context"

	"SmartCart-Backend/domain"
	"SmartCart-Backend/entities"
	"SmartCart-Backend/internal/utils/storage"
)

type (
	ProductService interface {
		GetAllProducts(ctx context.Context) ([]domain.Product, error)
		SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
		GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
		GetCategories(ctx context.Context) ([]string, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepository.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, products), nil
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.productRepository.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, products), nil
}

func (s *productService) GetProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.productRepository.GetProductsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, products), nil
}

func (s *productService) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return UniqueCategories(categories), nil
}

func (s *productService) toResponses(ctx context.Context, products []*entities.Product) []domain.Product {
	response := make([]domain.Product, 0, len(products))
	for _, p := range products {
		response = append(response, ToDomain(ctx, p, s.s3))
	}
	return response
}

// ToDomain maps a product row into its API shape, resolving the image
// reference through s3 when one is given.
func ToDomain(ctx context.Context, p *entities.Product, s3 storage.AwsS3) domain.Product {
	return domain.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Barcode:     p.Barcode,
		ImageURL:    ResolveImage(ctx, p.ImageURL, s3),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}

func ResolveImage(ctx context.Context, ref *string, s3 storage.AwsS3) *string {
	if ref == nil || s3 == nil {
		return ref
	}
	resolved := s3.ResolveImageURL(ctx, *ref)
	return &resolved
}

// UniqueCategories drops repeated categories, keeping first-seen order.
func UniqueCategories(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	unique := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
