package dto

import "github.com/HAKEEM243/Masambukidi/internal/models"

type SubmitReportRequest struct {
	URL           string `json:"url"`
	Platform      string `json:"platform"`
	AbuseType     string `json:"abuse_type"`
	Description   string `json:"description"`
	ReporterEmail string `json:"reporter_email"`
	ReporterName  string `json:"reporter_name"`
}

type SubmitReportResponse struct {
	Success     bool   `json:"success"`
	RefNumber   string `json:"ref_number"`
	Message     string `json:"message"`
	TrackingURL string `json:"tracking_url"`
}

// ReportWithLabel decorates a report with its human status label for the
// public tracking endpoint.
type ReportWithLabel struct {
	models.Report
	StatusLabel string `json:"status_label"`
}

// ProcessReportRequest carries a partial admin update; nil fields leave
// the stored values unchanged.
type ProcessReportRequest struct {
	Status       *string `json:"status"`
	ActionsTaken *string `json:"actions_taken"`
	AdminNotes   *string `json:"admin_notes"`
}
