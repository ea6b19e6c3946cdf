package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AlertHandler struct {
	alerts *services.AlertService
}

func NewAlertHandler(alerts *services.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// Active lists alerts that still need attention.
func (h *AlertHandler) Active(c *fiber.Ctx) error {
	alerts, err := h.alerts.ActiveAlerts()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(alerts), "data": alerts})
}

// Subscribe registers an email for alert notifications; re-subscribing a
// known address reactivates it.
func (h *AlertHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	_ = c.BodyParser(&req)

	if err := h.alerts.Subscribe(req.Email, req.Name); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Abonnement activé."})
}

// Subscribers lists every registered address.
func (h *AlertHandler) Subscribers(c *fiber.Ctx) error {
	subscribers, err := h.alerts.Subscribers()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(subscribers), "data": subscribers})
}

// Broadcast counts the would-be recipients; delivery needs a mail provider.
func (h *AlertHandler) Broadcast(c *fiber.Ctx) error {
	sent, total, err := h.alerts.Broadcast()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"sent":    sent,
		"total":   total,
		"message": "Fonctionnalité email disponible avec SendGrid configuré",
	})
}

// AddDetection records an external monitoring hit.
func (h *AlertHandler) AddDetection(c *fiber.Ctx) error {
	var req dto.AddAlertRequest
	_ = c.BodyParser(&req)

	if _, err := h.alerts.AddDetection(services.AddAlertInput{
		Platform:    req.Platform,
		URL:         req.URL,
		Description: req.Description,
		Source:      req.Source,
	}); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Alerte enregistrée"})
}

// Review moves a fresh alert into the reviewing state.
func (h *AlertHandler) Review(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := h.alerts.Review(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Alerte en cours d'examen"})
}
