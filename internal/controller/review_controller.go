package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Respond(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService service.IReviewService
	jwt           fiber.Handler
}

func NewReviewController(reviewService service.IReviewService, jwt fiber.Handler) IReviewController {
	return &reviewController{
		reviewService: reviewService,
		jwt:           jwt,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reviews")
	h.Use(c.jwt)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Post("/:id/respond", c.Respond)
	h.Delete("/:id", serverutils.AdminOnly, c.Delete)
}

func (c *reviewController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.reviewService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Review recorded", res)
}

func (c *reviewController) Respond(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.RespondReviewRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.reviewService.Respond(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Review not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Response saved", res)
}

func (c *reviewController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := c.reviewService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Review not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Review deleted", nil)
}

func (c *reviewController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.reviewService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Review not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *reviewController) GetAll(ctx *fiber.Ctx) error {
	if customerId := ctx.QueryInt("customer_id", 0); customerId > 0 {
		res, err := c.reviewService.GetByCustomer(ctx.Context(), customerId)
		if err != nil {
			return err
		}
		return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
	}

	res, err := c.reviewService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
