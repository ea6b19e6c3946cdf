package dto

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AddAlertRequest struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source"`
}
