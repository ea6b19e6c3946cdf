package dto

type PermissionRequestInput struct {
	RequesterName      string `json:"requester_name"`
	RequesterEmail     string `json:"requester_email"`
	UsagePurpose       string `json:"usage_purpose"`
	ContentDescription string `json:"content_description"`
}

type RespondPermissionRequest struct {
	Status          string `json:"status"`
	AdminNotes      string `json:"admin_notes"`
	RejectionReason string `json:"rejection_reason"`
}
