package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	AddVehicle(ctx *fiber.Ctx) error
	UpdateVehicle(ctx *fiber.Ctx) error
	DeleteVehicle(ctx *fiber.Ctx) error
	GetVehicles(ctx *fiber.Ctx) error
}

type customerController struct {
	customerService service.ICustomerService
	jwt             fiber.Handler
}

func NewCustomerController(customerService service.ICustomerService, jwt fiber.Handler) ICustomerController {
	return &customerController{
		customerService: customerService,
		jwt:             jwt,
	}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customers")
	h.Use(c.jwt)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)

	h.Post("/:id/vehicles", c.AddVehicle)
	h.Get("/:id/vehicles", c.GetVehicles)
	h.Put("/:id/vehicles/:vehicleId", c.UpdateVehicle)
	h.Delete("/:id/vehicles/:vehicleId", c.DeleteVehicle)
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Customer created", res)
}

func (c *customerController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateCustomerRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Customer not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Customer updated", res)
}

func (c *customerController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := c.customerService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Customer not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Customer deleted", nil)
}

func (c *customerController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.customerService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Customer not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *customerController) GetAll(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	page := ctx.QueryInt("page", 1)
	pageSize := ctx.QueryInt("page_size", 25)

	res, err := c.customerService.GetAll(ctx.Context(), search, page, pageSize)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *customerController) AddVehicle(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CreateVehicleRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.AddVehicle(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Vehicle added", res)
}

func (c *customerController) UpdateVehicle(ctx *fiber.Ctx) error {
	vehicleId, err := ctx.ParamsInt("vehicleId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid vehicle id")
	}

	var req dto.UpdateVehicleRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.customerService.UpdateVehicle(ctx.Context(), vehicleId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Vehicle not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Vehicle updated", res)
}

func (c *customerController) DeleteVehicle(ctx *fiber.Ctx) error {
	vehicleId, err := ctx.ParamsInt("vehicleId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid vehicle id")
	}

	deleted, err := c.customerService.DeleteVehicle(ctx.Context(), vehicleId)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Vehicle not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Vehicle deleted", nil)
}

func (c *customerController) GetVehicles(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.customerService.GetVehicles(ctx.Context(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
