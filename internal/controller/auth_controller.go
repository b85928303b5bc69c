package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	jwt         fiber.Handler
}

func NewAuthController(authService service.IAuthService, jwt fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		jwt:         jwt,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.jwt, c.Logout)
	h.Get("/me", c.jwt, c.Me)
	h.Post("/change-password", c.jwt, c.ChangePassword)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Logged in", res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	sessionId, _ := ctx.Locals("session_id").(string)
	if err := c.authService.Logout(ctx.Context(), sessionId); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Logged out", nil)
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	res, err := c.authService.Me(ctx.Context(), serverutils.UserId(ctx))
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "User not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Current user", res)
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.authService.ChangePassword(ctx.Context(), serverutils.UserId(ctx), &req); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Password changed", nil)
}
