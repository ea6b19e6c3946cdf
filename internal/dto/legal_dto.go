package dto

type CreateCaseRequest struct {
	ReportID           uint   `json:"report_id"`
	CaseType           string `json:"case_type"`
	OffenderName       string `json:"offender_name"`
	OffenderEmail      string `json:"offender_email"`
	OffenderPlatformID string `json:"offender_platform_id"`
}

type SignCaseRequest struct {
	SignatureData string `json:"signature_data"`
}
