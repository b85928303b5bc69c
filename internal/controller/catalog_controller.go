package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
	jwt            fiber.Handler
}

func NewCatalogController(catalogService service.ICatalogService, jwt fiber.Handler) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
		jwt:            jwt,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/services")
	h.Use(c.jwt)
	h.Post("", serverutils.AdminOnly, c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Put("/:id", serverutils.AdminOnly, c.Update)
	h.Delete("/:id", serverutils.AdminOnly, c.Delete)
}

func (c *catalogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.catalogService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Service created", res)
}

func (c *catalogController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateServiceRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.catalogService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Service not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Service updated", res)
}

func (c *catalogController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := c.catalogService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Service not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Service deleted", nil)
}

func (c *catalogController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.catalogService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Service not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *catalogController) GetAll(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", false)
	res, err := c.catalogService.GetAll(ctx.Context(), activeOnly)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
