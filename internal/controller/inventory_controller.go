package controller

import (
	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IInventoryController interface {
	RegisterRoutes(r fiber.Router)
	CreateItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	DeleteItem(ctx *fiber.Ctx) error
	ShowItem(ctx *fiber.Ctx) error
	GetAllItems(ctx *fiber.Ctx) error
	RecordTransaction(ctx *fiber.Ctx) error
	GetItemTransactions(ctx *fiber.Ctx) error
	GetTechnicianHoldings(ctx *fiber.Ctx) error
}

type inventoryController struct {
	inventoryService service.IInventoryService
	jwt              fiber.Handler
}

func NewInventoryController(inventoryService service.IInventoryService, jwt fiber.Handler) IInventoryController {
	return &inventoryController{
		inventoryService: inventoryService,
		jwt:              jwt,
	}
}

func (c *inventoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/inventory")
	h.Use(c.jwt)
	h.Post("", serverutils.AdminOnly, c.CreateItem)
	h.Get("", c.GetAllItems)
	h.Get("/holdings/:userId", c.GetTechnicianHoldings)
	h.Get("/:id", c.ShowItem)
	h.Put("/:id", serverutils.AdminOnly, c.UpdateItem)
	h.Delete("/:id", serverutils.AdminOnly, c.DeleteItem)

	h.Post("/transactions", c.RecordTransaction)
	h.Get("/:id/transactions", c.GetItemTransactions)
}

func (c *inventoryController) CreateItem(ctx *fiber.Ctx) error {
	var req dto.CreateInventoryItemRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.inventoryService.CreateItem(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Item created", res)
}

func (c *inventoryController) UpdateItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateInventoryItemRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.inventoryService.UpdateItem(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Item not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Item updated", res)
}

func (c *inventoryController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, deactivated, err := c.inventoryService.DeleteItem(ctx.Context(), id)
	if err != nil {
		return err
	}
	if deactivated {
		return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Item deactivated (has transaction history)", nil)
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Item not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Item deleted", nil)
}

func (c *inventoryController) ShowItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.inventoryService.ShowItem(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Item not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *inventoryController) GetAllItems(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active_only", false)
	res, err := c.inventoryService.GetAllItems(ctx.Context(), activeOnly)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *inventoryController) RecordTransaction(ctx *fiber.Ctx) error {
	var req dto.CreateInventoryTransactionRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.inventoryService.RecordTransaction(ctx.Context(), serverutils.UserId(ctx), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Transaction recorded", res)
}

func (c *inventoryController) GetItemTransactions(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.inventoryService.GetItemTransactions(ctx.Context(), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *inventoryController) GetTechnicianHoldings(ctx *fiber.Ctx) error {
	userId, err := ctx.ParamsInt("userId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	res, err := c.inventoryService.GetTechnicianHoldings(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
