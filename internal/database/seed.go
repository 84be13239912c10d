// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/product-catalog/internal/models"
)

// SampleProducts is the demo catalog loaded by the seed command.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ProductKey:         1001,
			Retailer:           models.StringPtr("Best Buy"),
			Brand:              models.StringPtr("Apple"),
			Model:              models.StringPtr("A2848"),
			ProductName:        "iPhone 15 Pro",
			Price:              models.MustPrice("999.99"),
			ProductDescription: models.StringPtr("6.1-inch smartphone with titanium frame"),
		},
		{
			ProductKey:         1002,
			Retailer:           models.StringPtr("Best Buy"),
			Brand:              models.StringPtr("Apple"),
			Model:              models.StringPtr("MX2D3"),
			ProductName:        "MacBook Air 13",
			Price:              models.MustPrice("1099.00"),
			ProductDescription: models.StringPtr("13-inch laptop with M3 chip"),
		},
		{
			ProductKey:         1003,
			Retailer:           models.StringPtr("Walmart"),
			Brand:              models.StringPtr("Samsung"),
			Model:              models.StringPtr("SM-S921U"),
			ProductName:        "Galaxy S24",
			Price:              models.MustPrice("799.99"),
			ProductDescription: models.StringPtr("6.2-inch Android smartphone"),
		},
		{
			ProductKey:         1004,
			Retailer:           models.StringPtr("Target"),
			Brand:              models.StringPtr("Sony"),
			Model:              models.StringPtr("WH1000XM5"),
			ProductName:        "Noise Cancelling Headphones",
			Price:              models.MustPrice("399.99"),
			ProductDescription: models.StringPtr("Wireless over-ear headphones"),
		},
		{
			ProductKey:  1005,
			Retailer:    models.StringPtr("Target"),
			ProductName: "USB-C Charging Cable",
			Price:       models.MustPrice("12.50"),
		},
	}
}

// SeedInitialData loads SampleProducts when the product table is empty.
// It returns the number of rows inserted.
func SeedInitialData(db *gorm.DB) (int, error) {
	logrus.Info("Seeding initial data...")

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		logrus.WithField("products", count).Info("Catalog already populated, skipping seed")
		return 0, nil
	}

	products := SampleProducts()
	err := WithTransaction(db, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}

	logrus.WithField("products", len(products)).Info("Initial data seeding completed")
	return len(products), nil
}
