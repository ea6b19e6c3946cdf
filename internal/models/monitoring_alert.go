package models

import "time"

// Monitoring alert statuses. Only new and reviewing are exposed publicly.
const (
	AlertNew       = "new"
	AlertReviewing = "reviewing"
	AlertResolved  = "resolved"
	AlertDismissed = "dismissed"
)

// MonitoringAlert records a suspicious content detection.
type MonitoringAlert struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Platform     string    `gorm:"size:100" json:"platform"`
	URL          string    `gorm:"size:2048" json:"url"`
	Description  string    `gorm:"type:text" json:"description"`
	Source       string    `gorm:"size:100" json:"source"`
	Status       string    `gorm:"size:20;not null;default:'new'" json:"status"`
	AutoDetected bool      `gorm:"not null;default:true" json:"auto_detected"`
	DetectedAt   time.Time `json:"detected_at"`
}
