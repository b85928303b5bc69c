package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"detailops-be/internal/entity"
	"detailops-be/internal/repository/memory"
)

// NewJwtMiddleware validates the bearer token and checks its session is
// still alive, so logout revokes tokens before they expire. On success the
// locals user_id, role and session_id are set.
func NewJwtMiddleware(secret string, sessions *memory.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ErrorResponse(ctx, fiber.StatusUnauthorized, "Missing token")
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ErrorResponse(ctx, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ErrorResponse(ctx, fiber.StatusUnauthorized, "Invalid claims")
		}

		sessionId, _ := claims["session_id"].(string)
		session, found := sessions.Get(sessionId)
		if !found {
			return ErrorResponse(ctx, fiber.StatusUnauthorized, "Session expired")
		}

		ctx.Locals("user_id", session.UserId)
		ctx.Locals("role", session.Role)
		ctx.Locals("session_id", session.Id)
		return ctx.Next()
	}
}

// AdminOnly guards management endpoints. Must run after the JWT middleware.
func AdminOnly(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(entity.UserRole)
	if role != entity.UserRoleAdmin {
		return ErrorResponse(ctx, fiber.StatusForbidden, "Admin access required")
	}
	return ctx.Next()
}

// UserId returns the authenticated user's id from locals.
func UserId(ctx *fiber.Ctx) int {
	id, _ := ctx.Locals("user_id").(int)
	return id
}
