package models

import "time"

// Permission request statuses.
const (
	PermissionPending  = "pending"
	PermissionApproved = "approved"
	PermissionRejected = "rejected"
)

// PermissionRequest is a request to use protected content, tracked by an
// AUT-prefixed ticket code.
type PermissionRequest struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	TicketNumber       string     `gorm:"size:20;not null;index" json:"ticket_number"`
	RequesterName      string     `gorm:"size:255;not null" json:"requester_name"`
	RequesterEmail     string     `gorm:"size:255;not null" json:"requester_email"`
	UsagePurpose       string     `gorm:"type:text;not null" json:"usage_purpose"`
	ContentDescription string     `gorm:"type:text;not null" json:"content_description"`
	Status             string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	AdminNotes         string     `gorm:"type:text" json:"admin_notes"`
	RejectionReason    string     `gorm:"type:text" json:"rejection_reason"`
	RespondedAt        *time.Time `json:"responded_at"`
	CreatedAt          time.Time  `json:"created_at"`
}
