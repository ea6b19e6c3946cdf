package routes

import (
	"time"

	"github.com/HAKEEM243/Masambukidi/internal/config"
	"github.com/HAKEEM243/Masambukidi/internal/dto"
	"github.com/HAKEEM243/Masambukidi/internal/handlers"
	"github.com/HAKEEM243/Masambukidi/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Reports   *handlers.ReportHandler
	Whitelist *handlers.WhitelistHandler
	Perms     *handlers.PermissionHandler
	Legal     *handlers.LegalHandler
	Alerts    *handlers.AlertHandler
	Analysis  *handlers.AnalysisHandler
	Profiles  *handlers.ProfileHandler
	Health    *handlers.HealthHandler
}

// Setup mounts the public and admin route trees under /api.
func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:                60,
		Expiration:         time.Minute,
		LimiterMiddleware:  limiter.SlidingWindow{},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Success: false, Error: "Trop de requêtes, réessayez plus tard",
			})
		},
	}))

	// Public surface
	api.Get("/health", h.Health.Check)
	api.Post("/report/submit", h.Reports.Submit)
	api.Get("/report/status/:ref", h.Reports.Status)
	api.Get("/reports/stats", h.Reports.PublicStats)
	api.Post("/verify/content", h.Whitelist.Verify)
	api.Get("/authorized/list", h.Whitelist.List)
	api.Post("/permission/request", h.Perms.Submit)
	api.Get("/monitor/alerts", h.Alerts.Active)
	api.Post("/ai/analyze", h.Analysis.Analyze)
	api.Post("/alerts/subscribe", h.Alerts.Subscribe)
	api.Get("/user/profile/:id", h.Profiles.Get)
	api.Get("/user/profile", h.Profiles.Get)
	api.Post("/admin/login", h.Auth.Login)

	// Admin surface, token-gated
	gate := middleware.AdminRequired(cfg)

	admin := api.Group("/admin", gate)
	admin.Get("/reports", h.Reports.AdminList)
	admin.Put("/report/:id/process", h.Reports.Process)
	admin.Get("/dashboard-stats", h.Reports.Dashboard)
	admin.Post("/whitelist/add", h.Whitelist.Add)
	admin.Put("/whitelist/:id/deactivate", h.Whitelist.Deactivate)
	admin.Get("/permissions", h.Perms.List)
	admin.Put("/permission/:id/respond", h.Perms.Respond)
	admin.Get("/legal-cases", h.Legal.List)
	admin.Post("/legal-case/create", h.Legal.Create)
	admin.Put("/legal-case/:id/sign", h.Legal.Sign)
	admin.Get("/legal-case/:id/html", h.Legal.Document)

	api.Get("/alerts/subscribers", gate, h.Alerts.Subscribers)
	api.Post("/alerts/broadcast", gate, h.Alerts.Broadcast)
	api.Post("/monitor/add", gate, h.Alerts.AddDetection)
	api.Put("/monitor/:id/review", gate, h.Alerts.Review)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.NotFoundResponse{
			Success: false,
			Error:   "Route non trouvée",
			Path:    c.Path(),
		})
	})
}
