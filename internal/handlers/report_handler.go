package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Submit registers an abuse report and hands back its tracking reference.
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	_ = c.BodyParser(&req)

	report, err := h.reports.Submit(services.SubmitReportInput{
		URL:           req.URL,
		Platform:      req.Platform,
		AbuseType:     req.AbuseType,
		Description:   req.Description,
		ReporterEmail: req.ReporterEmail,
		ReporterName:  req.ReporterName,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SubmitReportResponse{
		Success:     true,
		RefNumber:   report.RefNumber,
		Message:     "Signalement enregistré avec succès.",
		TrackingURL: "/verifier?ref=" + report.RefNumber,
	})
}

// Status is the public tracking lookup by reference number.
func (h *ReportHandler) Status(c *fiber.Ctx) error {
	report, err := h.reports.GetByReference(c.Params("ref"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.ReportWithLabel{
			Report:      *report,
			StatusLabel: services.ReportStatusLabel(report.Status),
		},
	})
}

// PublicStats serves the anonymous transparency counters.
func (h *ReportHandler) PublicStats(c *fiber.Ctx) error {
	stats, err := h.reports.PublicStats()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "stats": stats})
}

// AdminList returns the full report backlog with summary counters.
func (h *ReportHandler) AdminList(c *fiber.Ctx) error {
	summary, err := h.reports.Summary()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
		"data":    summary.Recent,
	})
}

// Process applies a partial admin update to one report.
func (h *ReportHandler) Process(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	var req dto.ProcessReportRequest
	_ = c.BodyParser(&req)

	if _, err := h.reports.Process(id, services.ProcessReportInput{
		Status:       req.Status,
		ActionsTaken: req.ActionsTaken,
		AdminNotes:   req.AdminNotes,
	}); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Signalement mis à jour"})
}

// Dashboard serves the aggregated admin overview.
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.reports.Dashboard()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
