package handlers

import (
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login exchanges admin credentials for the static API token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	_ = c.BodyParser(&req)

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.AdminUser{
			Username: req.Username,
			Role:     "superadmin",
			Name:     "Administrateur Masambukidi I",
		},
	})
}
