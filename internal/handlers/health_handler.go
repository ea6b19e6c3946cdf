package handlers

import (
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	cfg   *config.Config
	clock clock.Clock
}

func NewHealthHandler(cfg *config.Config, clk clock.Clock) *HealthHandler {
	return &HealthHandler{cfg: cfg, clock: clk}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "operational",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
		Storage:   h.cfg.StorageDriver,
	})
}
