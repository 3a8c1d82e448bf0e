// internal/handlers/errors.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

// respondError renders a service error by kind. Internal causes are
// attached to the gin context for the request logger, never to the body.
func respondError(c *gin.Context, err error) {
	message := services.PublicMessage(err)

	switch services.KindOf(err) {
	case services.KindValidation:
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, message, nil)
	case services.KindNotFound:
		utils.NotFoundResponse(c, message)
	case services.KindConflict:
		utils.ConflictResponse(c, message)
	case services.KindUnauthorized:
		utils.UnauthorizedResponse(c, message)
	default:
		_ = c.Error(err)
		utils.InternalErrorResponse(c, "")
	}
}
