package models

import "time"

// Legal case types.
const (
	CaseMiseEnDemeure   = "mise_en_demeure"
	CasePlainteFormelle = "plainte_formelle"
	CaseInjonction      = "injonction"
)

// Legal case statuses. Signed is terminal.
const (
	CaseDraft  = "draft"
	CaseSigned = "signed"
)

// LegalCase is a formal action derived from exactly one Report. The report
// fields are snapshotted at creation time; later report edits do not
// propagate into the case.
type LegalCase struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CaseNumber         string     `gorm:"size:20;not null;index" json:"case_number"`
	ReportID           uint       `gorm:"not null;index" json:"report_id"`
	CaseType           string     `gorm:"size:30;not null;default:'mise_en_demeure'" json:"case_type"`
	OffenderName       string     `gorm:"size:255" json:"offender_name"`
	OffenderEmail      string     `gorm:"size:255" json:"offender_email"`
	OffenderPlatformID string     `gorm:"size:255" json:"offender_platform_id"`
	DocumentContent    string     `gorm:"type:text" json:"document_content"`
	Status             string     `gorm:"size:20;not null;default:'draft'" json:"status"`
	RefNumber          string     `gorm:"size:20" json:"ref_number"`
	ReportURL          string     `gorm:"size:2048" json:"report_url"`
	Platform           string     `gorm:"size:100" json:"platform"`
	ReportDesc         string     `gorm:"type:text" json:"report_desc"`
	AbuseType          string     `gorm:"size:50" json:"abuse_type"`
	LawyerSignature    string     `gorm:"size:255" json:"lawyer_signature,omitempty"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
