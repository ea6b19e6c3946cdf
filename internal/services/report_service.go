package services

import (
	"errors"
	"math"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
	"github.com/HAKEEM243/Masambukidi/internal/refcode"
	"github.com/HAKEEM243/Masambukidi/internal/store"
	"github.com/benbjohnson/clock"
)

// Human-facing status labels for the report tracking endpoint. Unknown
// statuses fall back to the raw value.
var reportStatusLabels = map[string]string{
	models.ReportPending:     "En attente de traitement",
	models.ReportProcessing:  "En cours de traitement",
	models.ReportResolved:    "Résolu - Contenu retiré",
	models.ReportRejected:    "Rejeté - Non fondé",
	models.ReportLegalAction: "Action légale en cours",
}

// ReportStatusLabel returns the display label for a lifecycle status.
func ReportStatusLabel(status string) string {
	if label, ok := reportStatusLabels[status]; ok {
		return label
	}
	return status
}

// ReportService owns the report lifecycle: submission, status lookup,
// admin processing and the public/admin aggregates.
type ReportService struct {
	stores *store.Stores
	refs   *refcode.Generator
	clock  clock.Clock
}

func NewReportService(stores *store.Stores, refs *refcode.Generator, clk clock.Clock) *ReportService {
	return &ReportService{stores: stores, refs: refs, clock: clk}
}

type SubmitReportInput struct {
	URL           string
	Platform      string
	AbuseType     string
	Description   string
	ReporterEmail string
	ReporterName  string
}

// Submit creates a pending report with a fresh SIG reference.
func (s *ReportService) Submit(in SubmitReportInput) (*models.Report, error) {
	if in.URL == "" || in.Platform == "" || in.AbuseType == "" || in.Description == "" || in.ReporterEmail == "" {
		return nil, ValidationError("Champs obligatoires manquants")
	}

	now := s.clock.Now().UTC()
	report := &models.Report{
		RefNumber:     s.refs.Ref(refcode.PrefixReport),
		URL:           in.URL,
		Platform:      in.Platform,
		AbuseType:     in.AbuseType,
		Description:   in.Description,
		ReporterEmail: in.ReporterEmail,
		ReporterName:  in.ReporterName,
		Status:        models.ReportPending,
		Priority:      "normal",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.stores.Reports.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// GetByReference looks a report up by its exact tracking code.
func (s *ReportService) GetByReference(ref string) (*models.Report, error) {
	report, err := s.stores.Reports.GetByRefNumber(ref)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	return report, err
}

type ProcessReportInput struct {
	Status       *string
	ActionsTaken *string
	AdminNotes   *string
}

// Process applies an admin update. Absent or empty fields leave the stored
// value unchanged. Transitioning into resolved stamps ResolvedAt; the stamp
// is retained on later transitions out of resolved.
func (s *ReportService) Process(id uint, in ProcessReportInput) (*models.Report, error) {
	report, err := s.stores.Reports.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	if in.Status != nil && *in.Status != "" {
		report.Status = *in.Status
		if *in.Status == models.ReportResolved {
			report.ResolvedAt = &now
		}
	}
	if in.ActionsTaken != nil && *in.ActionsTaken != "" {
		report.ActionsTaken = *in.ActionsTaken
	}
	if in.AdminNotes != nil && *in.AdminNotes != "" {
		report.AdminNotes = *in.AdminNotes
	}
	report.UpdatedAt = now

	if err := s.stores.Reports.Update(report); err != nil {
		return nil, err
	}
	return report, nil
}

// ReportSummary is the admin list view: counters plus the 50 most recent
// reports, newest first.
type ReportSummary struct {
	Total       int             `json:"total"`
	Pending     int             `json:"pending"`
	Resolved    int             `json:"resolved"`
	LegalAction int             `json:"legal_action"`
	Recent      []models.Report `json:"-"`
}

func (s *ReportService) Summary() (*ReportSummary, error) {
	reports, err := s.stores.Reports.List()
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{Total: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case models.ReportPending:
			summary.Pending++
		case models.ReportResolved:
			summary.Resolved++
		case models.ReportLegalAction:
			summary.LegalAction++
		}
	}
	summary.Recent = newestFirst(reports, 50)
	return summary, nil
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PublicStats struct {
	TotalReports       int           `json:"total_reports"`
	ResolvedReports    int           `json:"resolved_reports"`
	AuthorizedContents int           `json:"authorized_contents"`
	Last30Days         int           `json:"last_30_days"`
	ByStatus           []StatusCount `json:"by_status"`
	SuccessRate        int           `json:"success_rate"`
}

// PublicStats aggregates the public counters. The 30-day window is
// 30×24h before the query instant, not calendar days. The success rate is
// 0 when there are no reports.
func (s *ReportService) PublicStats() (*PublicStats, error) {
	reports, err := s.stores.Reports.List()
	if err != nil {
		return nil, err
	}
	authorized, err := s.stores.Authorized.List()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	windowStart := now.Add(-30 * 24 * time.Hour)

	stats := &PublicStats{TotalReports: len(reports)}
	counts := make(map[string]int, len(models.ReportStatuses))
	for _, r := range reports {
		counts[r.Status]++
		if r.CreatedAt.After(windowStart) {
			stats.Last30Days++
		}
	}
	stats.ResolvedReports = counts[models.ReportResolved]

	for _, a := range authorized {
		if a.IsActive {
			stats.AuthorizedContents++
		}
	}

	stats.ByStatus = make([]StatusCount, 0, len(models.ReportStatuses))
	for _, status := range models.ReportStatuses {
		stats.ByStatus = append(stats.ByStatus, StatusCount{Status: status, Count: counts[status]})
	}

	if stats.TotalReports > 0 {
		stats.SuccessRate = int(math.Round(float64(stats.ResolvedReports) / float64(stats.TotalReports) * 100))
	}
	return stats, nil
}

type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}

type DashboardStats struct {
	TotalReports       int             `json:"total_reports"`
	PendingReports     int             `json:"pending_reports"`
	ResolvedReports    int             `json:"resolved_reports"`
	LegalAction        int             `json:"legal_action"`
	PermissionRequests int             `json:"permission_requests"`
	AuthorizedContents int             `json:"authorized_contents"`
	LegalCases         int             `json:"legal_cases"`
	NewAlerts          int             `json:"new_alerts"`
	WeekReports        int             `json:"week_reports"`
	ByPlatform         []PlatformCount `json:"by_platform"`
	RecentReports      []models.Report `json:"recent_reports"`
}

// Dashboard aggregates every entity for the admin overview. The weekly
// count uses a trailing 7×24h window.
func (s *ReportService) Dashboard() (*DashboardStats, error) {
	reports, err := s.stores.Reports.List()
	if err != nil {
		return nil, err
	}
	permissions, err := s.stores.Permissions.List()
	if err != nil {
		return nil, err
	}
	authorized, err := s.stores.Authorized.List()
	if err != nil {
		return nil, err
	}
	cases, err := s.stores.LegalCases.List()
	if err != nil {
		return nil, err
	}
	alerts, err := s.stores.Alerts.List()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	weekStart := now.Add(-7 * 24 * time.Hour)

	stats := &DashboardStats{
		TotalReports:       len(reports),
		PermissionRequests: len(permissions),
		LegalCases:         len(cases),
	}

	platforms := make(map[string]int)
	platformOrder := make([]string, 0)
	for _, r := range reports {
		switch r.Status {
		case models.ReportPending:
			stats.PendingReports++
		case models.ReportResolved:
			stats.ResolvedReports++
		case models.ReportLegalAction:
			stats.LegalAction++
		}
		if r.CreatedAt.After(weekStart) {
			stats.WeekReports++
		}
		if _, seen := platforms[r.Platform]; !seen {
			platformOrder = append(platformOrder, r.Platform)
		}
		platforms[r.Platform]++
	}

	for _, a := range authorized {
		if a.IsActive {
			stats.AuthorizedContents++
		}
	}
	for _, a := range alerts {
		if a.Status == models.AlertNew {
			stats.NewAlerts++
		}
	}

	stats.ByPlatform = make([]PlatformCount, 0, len(platformOrder))
	for _, p := range platformOrder {
		stats.ByPlatform = append(stats.ByPlatform, PlatformCount{Platform: p, Count: platforms[p]})
	}
	stats.RecentReports = newestFirst(reports, 5)
	return stats, nil
}

// newestFirst returns up to limit reports in reverse insertion order.
func newestFirst(reports []models.Report, limit int) []models.Report {
	out := make([]models.Report, 0, limit)
	for i := len(reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, reports[i])
	}
	return out
}
