package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IMembershipController interface {
	RegisterRoutes(r fiber.Router)
	CreatePlan(ctx *fiber.Ctx) error
	UpdatePlan(ctx *fiber.Ctx) error
	DeletePlan(ctx *fiber.Ctx) error
	ShowPlan(ctx *fiber.Ctx) error
	GetAllPlans(ctx *fiber.Ctx) error
	Subscribe(ctx *fiber.Ctx) error
	CancelSubscription(ctx *fiber.Ctx) error
	GetCustomerSubscriptions(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	GatewayNotification(ctx *fiber.Ctx) error
}

type membershipController struct {
	membershipService service.IMembershipService
	jwt               fiber.Handler
}

func NewMembershipController(membershipService service.IMembershipService, jwt fiber.Handler) IMembershipController {
	return &membershipController{
		membershipService: membershipService,
		jwt:               jwt,
	}
}

func (c *membershipController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/memberships")

	// The gateway calls this server-to-server; the signature check is the
	// authentication.
	h.Post("/notification", c.GatewayNotification)

	h.Post("/plans", c.jwt, serverutils.AdminOnly, c.CreatePlan)
	h.Get("/plans", c.jwt, c.GetAllPlans)
	h.Get("/plans/:id", c.jwt, c.ShowPlan)
	h.Put("/plans/:id", c.jwt, serverutils.AdminOnly, c.UpdatePlan)
	h.Delete("/plans/:id", c.jwt, serverutils.AdminOnly, c.DeletePlan)

	h.Post("/subscriptions", c.jwt, c.Subscribe)
	h.Post("/subscriptions/:id/cancel", c.jwt, c.CancelSubscription)
	h.Get("/customers/:customerId/subscriptions", c.jwt, c.GetCustomerSubscriptions)

	h.Post("/checkout", c.jwt, c.Checkout)
}

func (c *membershipController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreateMembershipPlanRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.membershipService.CreatePlan(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Plan created", res)
}

func (c *membershipController) UpdatePlan(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateMembershipPlanRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.membershipService.UpdatePlan(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Plan not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Plan updated", res)
}

func (c *membershipController) DeletePlan(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := c.membershipService.DeletePlan(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Plan not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Plan deleted", nil)
}

func (c *membershipController) ShowPlan(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.membershipService.ShowPlan(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Plan not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *membershipController) GetAllPlans(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", false)
	res, err := c.membershipService.GetAllPlans(ctx.Context(), activeOnly)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *membershipController) Subscribe(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.membershipService.Subscribe(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Subscription created", res)
}

func (c *membershipController) CancelSubscription(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.membershipService.CancelSubscription(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Subscription not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Subscription canceled", res)
}

func (c *membershipController) GetCustomerSubscriptions(ctx *fiber.Ctx) error {
	customerId, err := ctx.ParamsInt("customerId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer id")
	}

	res, err := c.membershipService.GetCustomerSubscriptions(ctx.Context(), customerId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *membershipController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.membershipService.Checkout(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Checkout created", res)
}

func (c *membershipController) GatewayNotification(ctx *fiber.Ctx) error {
	var req dto.GatewayWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid notification body")
	}

	if err := c.membershipService.HandleGatewayNotification(ctx.Context(), &req); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", nil)
}
