package handlers

import (
	"strconv"

	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get serves a member profile, addressed by path id or user_id query.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	raw := c.Params("id")
	if raw == "" {
		raw = c.Query("user_id")
	}
	if raw == "" {
		return respondError(c, fiber.StatusBadRequest, "Identifiant utilisateur requis")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusBadRequest, "Identifiant utilisateur invalide")
	}

	profile, err := h.profiles.Get(uint(id))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": profile})
}
