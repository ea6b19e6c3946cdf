package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired guards administrative routes with the static admin token,
// read from the Authorization header (Bearer prefix optional) or the
// token query parameter. Fails closed before the handler runs; with no
// token configured every admin call is refused.
func AdminRequired(cfg *config.Config) fiber.Handler {
	secret := []byte(cfg.AdminToken)

	return func(c *fiber.Ctx) error {
		if len(secret) > 0 {
			header := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(header), secret) == 1 {
				return c.Next()
			}
			if subtle.ConstantTimeCompare([]byte(c.Query("token")), secret) == 1 {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Non autorisé",
		})
	}
}
