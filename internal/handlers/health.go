// internal/handlers/health.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-backend/internal/i18n"
	"github.com/javajoker/catalog-backend/internal/utils"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	version string
}

func NewHealthHandler(store Pinger, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "UNAVAILABLE", i18n.T(lang, i18n.KeyHealthUnavailable), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status":  i18n.T(lang, i18n.KeyHealthOK),
		"version": h.version,
	})
}
