package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    AdminUser `json:"user"`
}
