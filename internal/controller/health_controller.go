package controller

import (
	"stoic-companion-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(app *fiber.App)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	version string
}

func NewHealthController(version string) IHealthController {
	return &healthController{
		version: version,
	}
}

// RegisterRoutes mounts at the app root, outside the /api group, so load
// balancers can probe without a prefix.
func (c *healthController) RegisterRoutes(app *fiber.App) {
	app.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:  "healthy",
		Version: c.version,
	})
}
