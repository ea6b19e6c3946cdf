package dto

// ErrorResponse is the fixed failure payload of the API.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NotFoundResponse echoes the offending path on unmatched routes.
type NotFoundResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Path    string `json:"path"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
}
