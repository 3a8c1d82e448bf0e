// internal/handlers/seed.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

type SeedHandler struct {
	seedService *services.SeedService
}

func NewSeedHandler(seedService *services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// GET /seed
func (h *SeedHandler) RunSeed(c *gin.Context) {
	message, err := h.seedService.RunSeed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": message,
	})
}
