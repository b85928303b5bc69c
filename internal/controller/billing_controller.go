package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/repository/contract"
	"detailops-be/internal/service"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	CreateInvoice(ctx *fiber.Ctx) error
	UpdateInvoice(ctx *fiber.Ctx) error
	DeleteInvoice(ctx *fiber.Ctx) error
	ShowInvoice(ctx *fiber.Ctx) error
	GetAllInvoices(ctx *fiber.Ctx) error
	RecordPayment(ctx *fiber.Ctx) error
	GetPayments(ctx *fiber.Ctx) error
}

type billingController struct {
	billingService service.IBillingService
	jwt            fiber.Handler
}

func NewBillingController(billingService service.IBillingService, jwt fiber.Handler) IBillingController {
	return &billingController{
		billingService: billingService,
		jwt:            jwt,
	}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/invoices")
	h.Use(c.jwt)
	h.Post("", c.CreateInvoice)
	h.Get("", c.GetAllInvoices)
	h.Get("/:id", c.ShowInvoice)
	h.Put("/:id", c.UpdateInvoice)
	h.Delete("/:id", c.DeleteInvoice)

	h.Post("/:id/payments", c.RecordPayment)
	h.Get("/:id/payments", c.GetPayments)
}

func (c *billingController) CreateInvoice(ctx *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.billingService.CreateInvoice(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Invoice created", res)
}

func (c *billingController) UpdateInvoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateInvoiceRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.billingService.UpdateInvoice(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Invoice not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Invoice updated", res)
}

func (c *billingController) DeleteInvoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := c.billingService.DeleteInvoice(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Invoice not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Invoice deleted", nil)
}

func (c *billingController) ShowInvoice(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.billingService.ShowInvoice(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Invoice not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *billingController) GetAllInvoices(ctx *fiber.Ctx) error {
	var filter contract.InvoiceFilter

	if s := ctx.Query("paid"); s != "" {
		paid := ctx.QueryBool("paid", false)
		filter.Paid = &paid
	}
	if v := ctx.QueryInt("job_id", 0); v > 0 {
		filter.JobId = &v
	}

	res, err := c.billingService.GetAllInvoices(ctx.Context(), filter)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *billingController) RecordPayment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CreatePaymentRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.billingService.RecordPayment(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Invoice not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Payment recorded", res)
}

func (c *billingController) GetPayments(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.billingService.GetPayments(ctx.Context(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
