package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Request ID Middleware
// ============================================================

const RequestIDHeader = "X-Request-Id"

// RequestID проставляет сквозной идентификатор запроса.
// Входящий заголовок сохраняется, иначе выдается новый UUID.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestid", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
