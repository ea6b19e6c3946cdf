package handlers

import (
	"errors"
	"log/slog"

	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps the service sentinels onto their HTTP responses.
// Validation failures carry their own user-facing message; anything
// unmapped is logged and hidden behind a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	if services.IsValidation(err) {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	switch {
	case errors.Is(err, services.ErrReportNotFound):
		return respondError(c, fiber.StatusNotFound, "Signalement introuvable")
	case errors.Is(err, services.ErrCaseNotFound):
		return respondError(c, fiber.StatusNotFound, "Dossier introuvable")
	case errors.Is(err, services.ErrCaseAlreadySigned):
		return respondError(c, fiber.StatusConflict, "Document déjà signé")
	case errors.Is(err, services.ErrProfileNotFound):
		return respondError(c, fiber.StatusNotFound, "Profil utilisateur introuvable")
	case errors.Is(err, services.ErrPermissionNotFound),
		errors.Is(err, services.ErrWhitelistNotFound),
		errors.Is(err, services.ErrAlertNotFound):
		return respondError(c, fiber.StatusNotFound, "Introuvable")
	case errors.Is(err, services.ErrInvalidCredentials):
		return respondError(c, fiber.StatusUnauthorized, "Identifiants incorrects")
	}

	slog.Error("unhandled service error",
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return respondError(c, fiber.StatusInternalServerError, "Erreur serveur")
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Error: message})
}

// parseID reads a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, services.ValidationError("Identifiant invalide")
	}
	return uint(id), nil
}
