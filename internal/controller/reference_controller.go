package controller

import (
	"gcn-navigator-be/internal/pkg/serverutils"
	"gcn-navigator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReferenceController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type referenceController struct {
	service service.IReferenceService
}

func NewReferenceController(service service.IReferenceService) IReferenceController {
	return &referenceController{service: service}
}

func (c *referenceController) RegisterRoutes(r fiber.Router) {
	r.Get("/references", c.GetAll)
}

func (c *referenceController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get references", res))
}
