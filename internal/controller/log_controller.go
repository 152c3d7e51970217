package controller

import (
	"strconv"

	"gcn-navigator-be/internal/pkg/serverutils"
	"gcn-navigator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
}

type logController struct {
	service service.ILogService
}

func NewLogController(service service.ILogService) ILogController {
	return &logController{service: service}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	r.Get("/logs", c.GetLogs)
}

func (c *logController) GetLogs(ctx *fiber.Ctx) error {
	lastId := int64(0)
	if raw := ctx.Query("last_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return serverutils.NewInvalidRequest("last_id must be a non-negative integer")
		}
		lastId = parsed
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", c.service.GetSince(lastId)))
}
