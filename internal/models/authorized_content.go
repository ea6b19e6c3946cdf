package models

import "time"

// AuthorizedContent is a whitelisted content item, exempt from abuse
// reporting. Never hard-deleted; deactivation flips IsActive. Duplicate
// active entries for the same URL are permitted; lookups take the earliest
// active match in insertion order.
type AuthorizedContent struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CertNumber      string    `gorm:"size:20;not null;index" json:"cert_number"`
	URL             string    `gorm:"size:2048;not null;index" json:"url"`
	BeneficiaryName string    `gorm:"size:255" json:"beneficiary_name"`
	ContentType     string    `gorm:"size:100" json:"content_type"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	DateAuthorized  time.Time `json:"date_authorized"`
	CreatedAt       time.Time `json:"created_at"`
}
