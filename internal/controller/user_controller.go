package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetTechnicians(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
	jwt         fiber.Handler
}

func NewUserController(userService service.IUserService, jwt fiber.Handler) IUserController {
	return &userController{
		userService: userService,
		jwt:         jwt,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Use(c.jwt)
	h.Get("/technicians", c.GetTechnicians)
	h.Post("", serverutils.AdminOnly, c.Create)
	h.Get("", serverutils.AdminOnly, c.GetAll)
	h.Get("/:id", serverutils.AdminOnly, c.Show)
	h.Put("/:id", serverutils.AdminOnly, c.Update)
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.userService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "User created", res)
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateUserRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.userService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "User not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "User updated", res)
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.userService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "User not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *userController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.userService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *userController) GetTechnicians(ctx *fiber.Ctx) error {
	res, err := c.userService.GetTechnicians(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
