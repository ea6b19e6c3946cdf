package dto

type VerifyContentRequest struct {
	URL string `json:"url"`
}

type CertificateSummary struct {
	Number      string `json:"number"`
	Beneficiary string `json:"beneficiary"`
	ContentType string `json:"content_type"`
}

type VerifyContentResponse struct {
	Success      bool                `json:"success"`
	IsAuthorized bool                `json:"is_authorized"`
	Certificate  *CertificateSummary `json:"certificate,omitempty"`
	Message      string              `json:"message"`
	ReportURL    string              `json:"report_url,omitempty"`
}

type AddWhitelistRequest struct {
	URL             string `json:"url"`
	BeneficiaryName string `json:"beneficiary_name"`
	ContentType     string `json:"content_type"`
}
