// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthTokenExpired  = "auth.token_expired"
	KeyAdminAccessDenied = "admin.access_denied"

	// Products
	KeyProductDeleted   = "product.deleted"
	KeyProductNotFound  = "product.not_found"
	KeyProductInvalidID = "product.invalid_id"

	// Uploads
	KeyUploadNoFiles = "upload.no_files"

	// System
	KeyHealthOK          = "system.health_ok"
	KeyHealthUnavailable = "system.health_unavailable"
	KeyRateLimited       = "system.rate_limited"
	KeyInternalError     = "system.internal_error"

	// Validation
	KeyValidationInvalid    = "validation.invalid"
	KeyValidationPagination = "validation.pagination"
)
