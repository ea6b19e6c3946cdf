package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PermissionHandler struct {
	permissions *services.PermissionService
}

func NewPermissionHandler(permissions *services.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

// Submit records a usage permission request and returns its ticket.
func (h *PermissionHandler) Submit(c *fiber.Ctx) error {
	var req dto.PermissionRequestInput
	_ = c.BodyParser(&req)

	request, err := h.permissions.Submit(services.SubmitPermissionInput{
		RequesterName:      req.RequesterName,
		RequesterEmail:     req.RequesterEmail,
		UsagePurpose:       req.UsagePurpose,
		ContentDescription: req.ContentDescription,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"ticket_number": request.TicketNumber,
		"message":       "Votre demande a été enregistrée. Délai de réponse: 5-10 jours ouvrables.",
	})
}

// List returns every permission request, newest first.
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	requests, err := h.permissions.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(requests), "data": requests})
}

// Respond records the admin decision on one request.
func (h *PermissionHandler) Respond(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.RespondPermissionRequest
	_ = c.BodyParser(&req)

	if _, err := h.permissions.Respond(id, services.RespondPermissionInput{
		Status:          req.Status,
		AdminNotes:      req.AdminNotes,
		RejectionReason: req.RejectionReason,
	}); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Demande mise à jour"})
}
