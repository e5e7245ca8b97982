package controller

import (
	"stoic-companion-be/internal/dto"
	"stoic-companion-be/internal/pkg/serverutils"
	"stoic-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuoteController interface {
	RegisterRoutes(r fiber.Router)
	ContextQuote(ctx *fiber.Ctx) error
}

type quoteController struct {
	quoteService service.IQuoteService
}

func NewQuoteController(quoteService service.IQuoteService) IQuoteController {
	return &quoteController{
		quoteService: quoteService,
	}
}

func (c *quoteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quote/v1")
	h.Post("", c.ContextQuote)
}

func (c *quoteController) ContextQuote(ctx *fiber.Ctx) error {
	var req dto.ContextQuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.quoteService.ContextQuote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
