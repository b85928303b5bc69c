package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/repository/contract"
	"detailops-be/internal/service"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type jobController struct {
	jobService service.IJobService
	jwt        fiber.Handler
}

func NewJobController(jobService service.IJobService, jwt fiber.Handler) IJobController {
	return &jobController{
		jobService: jobService,
		jwt:        jwt,
	}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/jobs")
	h.Use(c.jwt)
	h.Post("", c.Create)
	h.Get("", c.GetAll)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Patch("/:id/status", c.UpdateStatus)
	h.Delete("/:id", c.Delete)
}

func (c *jobController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.jobService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Job scheduled", res)
}

func (c *jobController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateJobRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.jobService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Job not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Job updated", res)
}

func (c *jobController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateJobStatusRequest
	if err := serverutils.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	res, err := c.jobService.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Job not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Job status updated", res)
}

func (c *jobController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	deleted, err := c.jobService.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Job not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Job deleted", nil)
}

func (c *jobController) Show(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res, err := c.jobService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, "Job not found")
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *jobController) GetAll(ctx *fiber.Ctx) error {
	var filter contract.JobFilter

	if s := ctx.Query("status"); s != "" {
		status := entity.JobStatus(s)
		filter.Status = &status
	}
	if v := ctx.QueryInt("customer_id", 0); v > 0 {
		filter.CustomerId = &v
	}
	if v := ctx.QueryInt("technician_id", 0); v > 0 {
		filter.TechnicianId = &v
	}
	if s := ctx.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' timestamp")
		}
		filter.From = &t
	}
	if s := ctx.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' timestamp")
		}
		filter.To = &t
	}

	res, err := c.jobService.GetAll(ctx.Context(), filter)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
