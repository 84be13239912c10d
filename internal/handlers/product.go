// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/product-catalog/internal/i18n"
	"github.com/javajoker/product-catalog/internal/middleware"
	"github.com/javajoker/product-catalog/internal/services"
	"github.com/javajoker/product-catalog/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /products
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetAllProducts(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	utils.OKResponse(c, products)
}

// GET /products/:productKey
func (h *ProductHandler) GetProduct(c *gin.Context) {
	key, ok := h.parseKey(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		h.internalError(c, err)
		return
	}

	utils.OKResponse(c, product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	req, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.ToModel())
	if err != nil {
		logFor(c).WithError(err).Error("Failed to create product")
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductCreateFailed), nil)
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /products
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	req, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		logFor(c).WithError(err).Error("Failed to update product")
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyProductUpdateFailed), nil)
		return
	}

	utils.OKResponse(c, product)
}

// DELETE /products/:productKey
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	key, ok := h.parseKey(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), key); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		h.internalError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GET /products/brand-summary
func (h *ProductHandler) GetBrandSummary(c *gin.Context) {
	summary, err := h.productService.GetBrandSummary(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	utils.OKResponse(c, summary)
}

// GET /products/search?name=&brand=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.productService.SearchProducts(c.Request.Context(), c.Query("name"), c.Query("brand"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	utils.OKResponse(c, products)
}

// GET /products/count
func (h *ProductHandler) GetProductCount(c *gin.Context) {
	count, err := h.productService.GetTotalProductCount(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	utils.OKResponse(c, count)
}

func (h *ProductHandler) parseKey(c *gin.Context) (int64, bool) {
	key, err := strconv.ParseInt(c.Param("productKey"), 10, 64)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalidKey), nil)
		return 0, false
	}
	return key, true
}

// bindProduct decodes and validates the request body, writing a 400 when
// either step fails.
func (h *ProductHandler) bindProduct(c *gin.Context) (*services.ProductRequest, bool) {
	lang := utils.GetLangFromContext(c)

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return nil, false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return nil, false
	}

	return &req, true
}

func (h *ProductHandler) internalError(c *gin.Context, err error) {
	logFor(c).WithError(err).Error("Catalog request failed")
	utils.InternalErrorResponse(c, "")
}

func logFor(c *gin.Context) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"path":       c.FullPath(),
	})
}
