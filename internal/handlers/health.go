// internal/handlers/health.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/database"
	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/utils"
)

const Version = "1.0.0"

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		logFor(c).WithError(err).Error("Health check failed")
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "UNAVAILABLE", err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  i18n.T(utils.GetLangFromContext(c), i18n.KeyHealthy),
		"version": Version,
	})
}
