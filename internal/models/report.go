package models

import "time"

// Abuse categories accepted on report submission. Unknown categories are
// still stored as-is; label lookups fall back to a generic label.
const (
	AbuseIdentityTheft       = "identity_theft"
	AbuseUnauthorizedContent = "unauthorized_content"
	AbuseDefamation          = "defamation"
	AbuseCommercialUse       = "commercial_use"
	AbuseHarassment          = "harassment"
	AbuseFraud               = "fraud"
	AbuseOther               = "other"
)

// Report lifecycle statuses.
const (
	ReportPending     = "pending"
	ReportProcessing  = "processing"
	ReportResolved    = "resolved"
	ReportRejected    = "rejected"
	ReportLegalAction = "legal_action"
)

// ReportStatuses lists the canonical statuses in breakdown order.
var ReportStatuses = []string{
	ReportPending,
	ReportProcessing,
	ReportResolved,
	ReportRejected,
	ReportLegalAction,
}

// Report is an abuse report submitted by the public. The integer ID is the
// identity; RefNumber is the human-facing tracking code (SIG-YYYYMMDD-NNNN)
// and carries no uniqueness guarantee.
type Report struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	RefNumber     string     `gorm:"size:20;not null;index" json:"ref_number"`
	URL           string     `gorm:"size:2048;not null" json:"url"`
	Platform      string     `gorm:"size:100;not null" json:"platform"`
	AbuseType     string     `gorm:"size:50;not null" json:"abuse_type"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	ReporterEmail string     `gorm:"size:255;not null" json:"reporter_email"`
	ReporterName  string     `gorm:"size:255" json:"reporter_name"`
	Status        string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	Priority      string     `gorm:"size:20;not null;default:'normal'" json:"priority"`
	ActionsTaken  string     `gorm:"type:text" json:"actions_taken"`
	AdminNotes    string     `gorm:"type:text" json:"admin_notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ResolvedAt    *time.Time `json:"resolved_at"`
}
