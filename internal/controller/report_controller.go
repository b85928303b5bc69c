package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/pkg/serverutils"
	"detailops-be/internal/service"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	GetRevenueStats(ctx *fiber.Ctx) error
	GetTopServices(ctx *fiber.Ctx) error
	GetDashboard(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
	jwt           fiber.Handler
}

func NewReportController(reportService service.IReportService, jwt fiber.Handler) IReportController {
	return &reportController{
		reportService: reportService,
		jwt:           jwt,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports")
	h.Use(c.jwt)
	h.Get("/revenue", c.GetRevenueStats)
	h.Get("/top-services", c.GetTopServices)
	h.Get("/dashboard", c.GetDashboard)
}

// parseRange reads start/end date query params. Defaults to the last 30
// days; end is exclusive.
func parseRange(ctx *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now

	if s := ctx.Query("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return start, end, fiber.NewError(fiber.StatusBadRequest, "Invalid 'start' date")
		}
		start = t
	}
	if s := ctx.Query("end"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return start, end, fiber.NewError(fiber.StatusBadRequest, "Invalid 'end' date")
		}
		end = t.AddDate(0, 0, 1)
	}
	return start, end, nil
}

func (c *reportController) GetRevenueStats(ctx *fiber.Ctx) error {
	start, end, err := parseRange(ctx)
	if err != nil {
		return err
	}

	res, err := c.reportService.GetRevenueStats(ctx.Context(), start, end)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *reportController) GetTopServices(ctx *fiber.Ctx) error {
	start, end, err := parseRange(ctx)
	if err != nil {
		return err
	}
	limit := ctx.QueryInt("limit", 10)

	res, err := c.reportService.GetTopServices(ctx.Context(), start, end, limit)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}

func (c *reportController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.reportService.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success", res)
}
