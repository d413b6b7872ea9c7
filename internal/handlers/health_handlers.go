package handlers

import (
	"context"
	"net/http"
	"time"

	"threadmart/internal/caching"
	"threadmart/internal/repositories"
	"threadmart/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthHandlers handles health check endpoints.
type HealthHandlers struct {
	db          repositories.DB
	cacheSvc    caching.CacheService
	minioSvc    services.MinioService
	imageBucket string
}

// NewHealthHandlers creates a new health handlers instance.
func NewHealthHandlers(db repositories.DB, cacheSvc caching.CacheService, minioSvc services.MinioService, imageBucket string) *HealthHandlers {
	return &HealthHandlers{
		db:          db,
		cacheSvc:    cacheSvc,
		minioSvc:    minioSvc,
		imageBucket: imageBucket,
	}
}

// HealthStatus represents the overall health status.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	probe := func(name string, err error) {
		if err != nil {
			health.Services[name] = "unhealthy"
			health.Status = "degraded"
		} else {
			health.Services[name] = "healthy"
		}
	}

	probe("database", h.checkDatabase(ctx))
	probe("redis", h.cacheSvc.Ping(ctx))
	probe("storage", h.minioSvc.EnsureBucketExists(ctx, h.imageBucket))

	statusCode := http.StatusOK
	if health.Status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}
	return c.JSON(statusCode, health)
}

// LivenessCheck handles GET /health/live
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadinessCheck handles GET /health/ready
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.checkDatabase(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "not_ready",
			"message": "Database unavailable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (h *HealthHandlers) checkDatabase(ctx context.Context) error {
	_, err := h.db.Exec(ctx, "SELECT 1")
	return err
}
