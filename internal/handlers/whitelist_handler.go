package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type WhitelistHandler struct {
	whitelist *services.WhitelistService
}

func NewWhitelistHandler(whitelist *services.WhitelistService) *WhitelistHandler {
	return &WhitelistHandler{whitelist: whitelist}
}

// Verify checks a URL against the active whitelist.
func (h *WhitelistHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyContentRequest
	_ = c.BodyParser(&req)

	entry, err := h.whitelist.CheckAuthorization(req.URL)
	if err != nil {
		return serviceError(c, err)
	}
	if entry == nil {
		return c.JSON(dto.VerifyContentResponse{
			Success:      true,
			IsAuthorized: false,
			Message:      "Ce contenu n'est pas dans notre liste de contenus autorisés.",
			ReportURL:    "/signaler",
		})
	}
	return c.JSON(dto.VerifyContentResponse{
		Success:      true,
		IsAuthorized: true,
		Certificate: &dto.CertificateSummary{
			Number:      entry.CertNumber,
			Beneficiary: entry.BeneficiaryName,
			ContentType: entry.ContentType,
		},
		Message: "Ce contenu est officiellement autorisé par Sa Majesté Masambukidi I",
	})
}

// List returns the active whitelist entries.
func (h *WhitelistHandler) List(c *fiber.Ctx) error {
	entries, err := h.whitelist.ListActive()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(entries), "data": entries})
}

// Add registers a new whitelist entry and returns its certificate number.
func (h *WhitelistHandler) Add(c *fiber.Ctx) error {
	var req dto.AddWhitelistRequest
	_ = c.BodyParser(&req)

	entry, err := h.whitelist.Add(services.AddWhitelistInput{
		URL:             req.URL,
		BeneficiaryName: req.BeneficiaryName,
		ContentType:     req.ContentType,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"cert_number": entry.CertNumber,
		"message":     "Contenu ajouté à la liste blanche",
	})
}

// Deactivate retires an entry without deleting it.
func (h *WhitelistHandler) Deactivate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return serviceError(c, err)
	}
	if _, err := h.whitelist.Deactivate(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Contenu désactivé"})
}
