package controller

import (
	"stoic-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPhilosopherController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type philosopherController struct {
	philosopherService service.IPhilosopherService
}

func NewPhilosopherController(philosopherService service.IPhilosopherService) IPhilosopherController {
	return &philosopherController{
		philosopherService: philosopherService,
	}
}

func (c *philosopherController) RegisterRoutes(r fiber.Router) {
	r.Get("/philosophers/v1", c.List)
}

func (c *philosopherController) List(ctx *fiber.Ctx) error {
	res, err := c.philosopherService.ListPhilosophers(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
