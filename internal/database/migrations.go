// internal/database/migrations.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/models"
)

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	logrus.Info("Database migrations completed successfully")
	return nil
}

// createIndexes adds expression indexes backing the case-insensitive
// lookups. Only postgres and sqlite accept this syntax; other dialects rely
// on the plain brand index from the model.
func createIndexes(db *gorm.DB) {
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
	default:
		return
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_product_brand_lower ON product (LOWER(brand))",
		"CREATE INDEX IF NOT EXISTS idx_product_name_lower ON product (LOWER(product_name))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			// Continue with other indexes instead of failing completely
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}
}
