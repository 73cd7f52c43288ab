package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/muhammedkado/find-job-with-ai/api/http/presenter"
	"github.com/muhammedkado/find-job-with-ai/pkg/health"
	"github.com/muhammedkado/find-job-with-ai/pkg/logger"
)

const readyTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	started time.Time
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, started: time.Now()}
}

// Health: liveness, never touches dependencies.
// @Summary Liveness probe
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, healthResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// Ready: checks dependencies (redis, when configured).
// @Summary Readiness probe
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("readiness check failed")
		return presenter.JSON(c, http.StatusServiceUnavailable, healthResponse{Status: "not_ready"})
	}
	return presenter.JSON(c, http.StatusOK, healthResponse{Status: "ready"})
}
