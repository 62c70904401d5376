package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"rolematch/internal/models"
)

// StatsSource reports library totals; a failure marks the service unhealthy.
type StatsSource interface {
	LibraryStats(ctx context.Context) (models.LibraryStats, error)
}

// HealthHandler reports service health via JSON API.
type HealthHandler struct {
	stats   StatsSource
	timeout time.Duration
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler(stats StatsSource) *HealthHandler {
	return &HealthHandler{stats: stats, timeout: 2 * time.Second}
}

// Check returns library totals, or 503 if the store cannot be read.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	stats, err := h.stats.LibraryStats(ctx)
	if err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "library store unavailable")
	}

	return jsonSuccess(c, fiber.Map{
		"library": stats,
	})
}
