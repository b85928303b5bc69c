package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/pkg/serverutils"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

// adminController exposes the server's own log file for in-app debugging.
type adminController struct {
	logger logger.ILogger
	jwt    fiber.Handler
}

func NewAdminController(log logger.ILogger, jwt fiber.Handler) IAdminController {
	return &adminController{
		logger: log,
		jwt:    jwt,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.jwt, serverutils.AdminOnly)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	logs, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", logs)
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	entry, err := c.logger.GetLogById(ctx.Params("id"))
	if err != nil {
		return err
	}
	if entry == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Log entry not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", entry)
}
