// internal/repository/product_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/product-catalog/internal/models"
)

// BrandCount is one row of the grouped brand query.
type BrandCount struct {
	Brand string `gorm:"column:brand"`
	Count int64  `gorm:"column:product_count"`
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByKey(ctx context.Context, key int64) (*models.Product, error)
	ExistsByKey(ctx context.Context, key int64) (bool, error)
	Save(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteByKey(ctx context.Context, key int64) error
	FindByBrandIgnoreCase(ctx context.Context, brand string) ([]models.Product, error)
	FindByNameContainingIgnoreCase(ctx context.Context, text string) ([]models.Product, error)
	BrandSummary(ctx context.Context) ([]BrandCount, error)
	Count(ctx context.Context) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("product_key").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByKey returns nil without an error when no row has the key.
func (r *productRepository) FindByKey(ctx context.Context, key int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Where("product_key = ?", key).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load product %d: %w", key, err)
	}
	return &product, nil
}

func (r *productRepository) ExistsByKey(ctx context.Context, key int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("product_key = ?", key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check product %d: %w", key, err)
	}
	return count > 0, nil
}

// Save inserts the product, or replaces every column of the row that
// already carries its key.
func (r *productRepository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_key"}},
			UpdateAll: true,
		}).
		Create(product).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save product %d: %w", product.ProductKey, err)
	}
	return product, nil
}

func (r *productRepository) DeleteByKey(ctx context.Context, key int64) error {
	err := r.db.WithContext(ctx).
		Where("product_key = ?", key).
		Delete(&models.Product{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", key, err)
	}
	return nil
}

func (r *productRepository) FindByBrandIgnoreCase(ctx context.Context, brand string) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Where("LOWER(brand) = LOWER(?)", brand).
		Order("product_key").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter products by brand: %w", err)
	}
	return products, nil
}

func (r *productRepository) FindByNameContainingIgnoreCase(ctx context.Context, text string) ([]models.Product, error) {
	products := []models.Product{}
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(product_name) LIKE ? ESCAPE '!'", pattern).
		Order("product_key").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products by name: %w", err)
	}
	return products, nil
}

func (r *productRepository) BrandSummary(ctx context.Context) ([]BrandCount, error) {
	rows := []BrandCount{}
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Select("brand, COUNT(*) AS product_count").
		Where("brand IS NOT NULL").
		Group("brand").
		Order("product_count DESC").
		Order("brand").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize brands: %w", err)
	}
	return rows, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// Escape character is '!'. '[' opens a character class on SQL Server.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_", "[", "![")

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
