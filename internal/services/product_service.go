// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	repo repository.ProductRepository
}

// ProductRequest is the body accepted by create and update. Key and price are
// pointers so that a missing value can be told apart from zero.
type ProductRequest struct {
	ProductKey         *int64        `json:"productKey" validate:"required"`
	Retailer           *string       `json:"retailer" validate:"omitempty,max=64"`
	Brand              *string       `json:"brand" validate:"omitempty,max=64"`
	Model              *string       `json:"model" validate:"omitempty,max=32"`
	ProductName        string        `json:"productName" validate:"notblank,max=96"`
	Price              *models.Price `json:"price" validate:"required,gte=0"`
	ProductDescription *string       `json:"productDescription"`
}

func (r *ProductRequest) ToModel() *models.Product {
	product := &models.Product{
		Retailer:           r.Retailer,
		Brand:              r.Brand,
		Model:              r.Model,
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
	}
	if r.ProductKey != nil {
		product.ProductKey = *r.ProductKey
	}
	if r.Price != nil {
		product.Price = models.NewPrice(r.Price.Decimal)
	}
	return product
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) GetProductByID(ctx context.Context, key int64) (*models.Product, error) {
	product, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// CreateProduct saves without checking for an existing row, so a duplicate
// key replaces the stored product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	return s.repo.Save(ctx, product)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	exists, err := s.repo.ExistsByKey(ctx, product.ProductKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}
	return s.repo.Save(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, key int64) error {
	exists, err := s.repo.ExistsByKey(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}
	return s.repo.DeleteByKey(ctx, key)
}

func (s *ProductService) GetProductsByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	return s.repo.FindByBrandIgnoreCase(ctx, brand)
}

func (s *ProductService) SearchProductsByName(ctx context.Context, name string) ([]models.Product, error) {
	return s.repo.FindByNameContainingIgnoreCase(ctx, name)
}

// SearchProducts filters by name when one is given, otherwise by brand,
// otherwise returns everything. Blank values count as absent.
func (s *ProductService) SearchProducts(ctx context.Context, name, brand string) ([]models.Product, error) {
	switch {
	case strings.TrimSpace(name) != "":
		return s.SearchProductsByName(ctx, name)
	case strings.TrimSpace(brand) != "":
		return s.GetProductsByBrand(ctx, brand)
	default:
		return s.GetAllProducts(ctx)
	}
}

func (s *ProductService) GetBrandSummary(ctx context.Context) ([]models.BrandSummary, error) {
	rows, err := s.repo.BrandSummary(ctx)
	if err != nil {
		return nil, err
	}

	summary := make([]models.BrandSummary, 0, len(rows))
	for _, row := range rows {
		summary = append(summary, models.BrandSummary{
			Brand: row.Brand,
			Count: row.Count,
		})
	}
	return summary, nil
}

func (s *ProductService) ProductExists(ctx context.Context, key int64) (bool, error) {
	return s.repo.ExistsByKey(ctx, key)
}

func (s *ProductService) GetTotalProductCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
