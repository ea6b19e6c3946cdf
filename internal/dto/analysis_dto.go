package dto

type AnalyzeRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}
