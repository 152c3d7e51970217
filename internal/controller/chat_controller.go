package controller

import (
	"gcn-navigator-be/internal/dto"
	"gcn-navigator-be/internal/pkg/serverutils"
	"gcn-navigator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SubmitQuery(ctx *fiber.Ctx) error
	GetChatList(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	DeleteChat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/query", c.SubmitQuery)
	r.Get("/chat-list", c.GetChatList)
	r.Get("/chat-history/:chatId", c.GetHistory)
	r.Delete("/chat", c.DeleteChat)
}

func (c *chatController) SubmitQuery(ctx *fiber.Ctx) error {
	var req dto.SubmitQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidRequest("request body must be valid JSON")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, warning, err := c.service.SubmitQuery(ctx.Context(), &req)
	if err != nil {
		return err
	}

	if warning != "" {
		return ctx.JSON(serverutils.SuccessResponseWithWarning("Success submit query", warning, res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success submit query", res))
}

func (c *chatController) GetChatList(ctx *fiber.Ctx) error {
	res, err := c.service.GetChatList(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat list", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)
	if limit < 0 || offset < 0 {
		return serverutils.NewInvalidRequest("limit and offset must not be negative")
	}

	res, err := c.service.GetHistory(ctx.Context(), ctx.Params("chatId"), limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	chatId := ctx.Query("chatId")
	if chatId == "" {
		return serverutils.NewInvalidRequest("chatId query parameter is required")
	}

	if err := c.service.DeleteChat(ctx.Context(), chatId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete chat", nil))
}
