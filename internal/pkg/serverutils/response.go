package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/logger"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(ctx *fiber.Ctx, code int, message string, data interface{}) error {
	return ctx.Status(code).JSON(Response{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(ctx *fiber.Ctx, code int, message string) error {
	return ctx.Status(code).JSON(Response{
		Success: false,
		Code:    code,
		Message: message,
	})
}

// NewErrorHandler builds the app-level fiber error handler. Known error
// types map to their status codes; anything else is logged and returned
// as a 500 without leaking internals.
func NewErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var stockErr *dto.InsufficientStockError
		if errors.As(err, &stockErr) {
			return ErrorResponse(ctx, fiber.StatusConflict, stockErr.Error())
		}

		var statusErr *dto.StatusError
		if errors.As(err, &statusErr) {
			return ErrorResponse(ctx, statusErr.Code, statusErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ErrorResponse(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}
