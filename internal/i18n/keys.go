// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError = "common.internal_error"
	KeyRateLimited   = "common.rate_limited"
	KeyHealthy       = "common.healthy"

	// Products
	KeyProductNotFound     = "product.not_found"
	KeyProductInvalidKey   = "product.invalid_key"
	KeyProductCreateFailed = "product.create_failed"
	KeyProductUpdateFailed = "product.update_failed"

	// Validation
	KeyValidationInvalid = "validation.invalid"
)
