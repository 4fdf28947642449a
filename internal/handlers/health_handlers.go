package handlers

import (
	"context"
	"net/http"
	"time"

	"avtoelon/internal/caching"
	"avtoelon/internal/models"
	"avtoelon/pkg/database"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const readinessTimeout = 2 * time.Second

// HealthHandlers handles health check endpoints
type HealthHandlers struct {
	db     *gorm.DB
	cache  caching.CatalogCache
	logger *zap.Logger
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(db *gorm.DB, cache caching.CatalogCache, logger *zap.Logger) *HealthHandlers {
	return &HealthHandlers{
		db:     db,
		cache:  cache,
		logger: logger.Named("health"),
	}
}

// HealthCheck answers liveness and does not touch the database.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthStatus{Status: "ok"})
}

// ReadinessCheck reports whether the database answers. The cache state is
// reported alongside and never fails the check.
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	cacheStatus := "ok"
	if err := h.cache.Ping(ctx); err != nil {
		h.logger.Warn("cache ping failed", zap.Error(err))
		cacheStatus = "unavailable"
	}

	if err := database.Ping(ctx, h.db); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, models.HealthStatus{
			Status:  "not_ready",
			Message: "database unavailable",
			Cache:   cacheStatus,
		})
	}
	return c.JSON(http.StatusOK, models.HealthStatus{Status: "ready", Cache: cacheStatus})
}
