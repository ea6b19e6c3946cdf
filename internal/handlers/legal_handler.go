package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/legaldoc"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/benbjohnson/clock"
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct {
	legal *services.LegalService
	clock clock.Clock
}

func NewLegalHandler(legal *services.LegalService, clk clock.Clock) *LegalHandler {
	return &LegalHandler{legal: legal, clock: clk}
}

// List returns every legal case, newest first.
func (h *LegalHandler) List(c *fiber.Ctx) error {
	cases, err := h.legal.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "count": len(cases), "data": cases})
}

// Create opens a draft case from an existing report.
func (h *LegalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCaseRequest
	_ = c.BodyParser(&req)

	legalCase, err := h.legal.CreateCase(services.CreateCaseInput{
		ReportID:           req.ReportID,
		CaseType:           req.CaseType,
		OffenderName:       req.OffenderName,
		OffenderEmail:      req.OffenderEmail,
		OffenderPlatformID: req.OffenderPlatformID,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"case_number": legalCase.CaseNumber,
		"document":    legalCase,
	})
}

// Sign stamps the electronic signature onto a draft case.
func (h *LegalHandler) Sign(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.SignCaseRequest
	_ = c.BodyParser(&req)

	if _, err := h.legal.Sign(id, req.SignatureData); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Document signé"})
}

// Document renders the printable HTML version of a case.
func (h *LegalHandler) Document(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	legalCase, err := h.legal.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	html, err := legaldoc.RenderHTML(legalCase, h.clock.Now().UTC())
	if err != nil {
		return serviceError(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}
