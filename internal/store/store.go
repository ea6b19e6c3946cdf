// Package store defines the persistence boundary of the protection backend.
// Each entity gets its own repository interface; implementations live in
// the memory and postgres subpackages.
package store

import (
	"errors"
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/models"
)

// ErrNotFound is returned when a referenced id or code does not exist.
var ErrNotFound = errors.New("record not found")

// ReportStore persists abuse reports. Reports are never deleted.
type ReportStore interface {
	Create(r *models.Report) error
	GetByID(id uint) (*models.Report, error)
	// GetByRefNumber matches the code case-sensitively and returns the
	// earliest report carrying it in insertion order.
	GetByRefNumber(ref string) (*models.Report, error)
	Update(r *models.Report) error
	// List returns all reports in insertion order.
	List() ([]models.Report, error)
}

// AuthorizedContentStore persists whitelist entries. Entries are soft
// deleted by flipping IsActive through Update.
type AuthorizedContentStore interface {
	Create(a *models.AuthorizedContent) error
	GetByID(id uint) (*models.AuthorizedContent, error)
	Update(a *models.AuthorizedContent) error
	List() ([]models.AuthorizedContent, error)
}

// PermissionRequestStore persists usage permission tickets.
type PermissionRequestStore interface {
	Create(p *models.PermissionRequest) error
	GetByID(id uint) (*models.PermissionRequest, error)
	Update(p *models.PermissionRequest) error
	List() ([]models.PermissionRequest, error)
}

// LegalCaseStore persists legal cases derived from reports.
type LegalCaseStore interface {
	Create(c *models.LegalCase) error
	GetByID(id uint) (*models.LegalCase, error)
	Update(c *models.LegalCase) error
	List() ([]models.LegalCase, error)
}

// MonitoringAlertStore persists detection alerts.
type MonitoringAlertStore interface {
	Create(a *models.MonitoringAlert) error
	GetByID(id uint) (*models.MonitoringAlert, error)
	Update(a *models.MonitoringAlert) error
	List() ([]models.MonitoringAlert, error)
}

// AlertSubscriberStore persists alert subscriptions keyed by email.
type AlertSubscriberStore interface {
	Create(s *models.AlertSubscriber) error
	GetByEmail(email string) (*models.AlertSubscriber, error)
	Update(s *models.AlertSubscriber) error
	List() ([]models.AlertSubscriber, error)
}

// UserProfileStore holds member profiles for the public lookup endpoint.
type UserProfileStore interface {
	Create(p *models.UserProfile) error
	GetByID(id uint) (*models.UserProfile, error)
}

// SystemLogStore receives batched error logs from the logging handler.
type SystemLogStore interface {
	CreateBatch(entries []models.SystemLog) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// Stores bundles every repository for injection into services.
type Stores struct {
	Reports     ReportStore
	Authorized  AuthorizedContentStore
	Permissions PermissionRequestStore
	LegalCases  LegalCaseStore
	Alerts      MonitoringAlertStore
	Subscribers AlertSubscriberStore
	Profiles    UserProfileStore
	SystemLogs  SystemLogStore
}
