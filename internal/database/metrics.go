// internal/database/metrics.go
package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/metrics"
)

const startedAtKey = "metrics:started_at"

// registerMetrics times every statement GORM runs and counts failures.
func registerMetrics(db *gorm.DB) error {
	cb := db.Callback()

	errs := []error{
		cb.Create().Before("gorm:create").Register("metrics:before_create", markStart),
		cb.Create().After("gorm:create").Register("metrics:after_create", observe("create")),
		cb.Query().Before("gorm:query").Register("metrics:before_query", markStart),
		cb.Query().After("gorm:query").Register("metrics:after_query", observe("query")),
		cb.Update().Before("gorm:update").Register("metrics:before_update", markStart),
		cb.Update().After("gorm:update").Register("metrics:after_update", observe("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:before_delete", markStart),
		cb.Delete().After("gorm:delete").Register("metrics:after_delete", observe("delete")),
		cb.Row().Before("gorm:row").Register("metrics:before_row", markStart),
		cb.Row().After("gorm:row").Register("metrics:after_row", observe("row")),
		cb.Raw().Before("gorm:raw").Register("metrics:before_raw", markStart),
		cb.Raw().After("gorm:raw").Register("metrics:after_raw", observe("raw")),
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func markStart(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func observe(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if v, ok := db.InstanceGet(startedAtKey); ok {
			if start, ok := v.(time.Time); ok {
				metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
			}
		}
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			metrics.DBErrors.WithLabelValues(operation).Inc()
		}
	}
}
