package controller

import (
	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/pkg/serverutils"
	"stoic-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	MatchPhilosopher(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
}

type matchController struct {
	matchService service.IMatchService
}

func NewMatchController(matchService service.IMatchService) IMatchController {
	return &matchController{
		matchService: matchService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	r.Post("/match/v1", c.MatchPhilosopher)
	r.Get("/user/v1/:user_id/profile", c.GetProfile)
}

func (c *matchController) MatchPhilosopher(ctx *fiber.Ctx) error {
	var req dto.MatchPhilosopherRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.matchService.MatchPhilosopher(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *matchController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := uuid.Parse(ctx.Params("user_id"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "invalid user id")
	}

	res, err := c.matchService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
