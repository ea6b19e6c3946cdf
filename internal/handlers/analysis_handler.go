package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnalysisHandler struct {
	analysis *services.AnalysisService
}

func NewAnalysisHandler(analysis *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// Analyze runs the rule-based risk scorer over submitted content.
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	_ = c.BodyParser(&req)

	result, err := h.analysis.Analyze(req.Content, req.ContentType)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"analysis":   result,
		"powered_by": "local",
	})
}
