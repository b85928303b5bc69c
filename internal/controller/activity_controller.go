package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	GetRecent(ctx *fiber.Ctx) error
}

type activityController struct {
	activityService service.IActivityService
	jwt             fiber.Handler
}

func NewActivityController(activityService service.IActivityService, jwt fiber.Handler) IActivityController {
	return &activityController{
		activityService: activityService,
		jwt:             jwt,
	}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activities")
	h.Use(c.jwt)
	h.Get("", c.GetRecent)
}

func (c *activityController) GetRecent(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 20)
	res, err := c.activityService.GetRecent(ctx.Context(), limit)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
