package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"shape-api/internal/shapes/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Shared helpers
// ============================================================

// decodeBody разбирает JSON-тело запроса. Пустое тело равносильно {}.
func decodeBody(c fiber.Ctx, dst any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON payload")
	}
	return nil
}

func badRequest(c fiber.Ctx, message string) error {
	return c.Status(400).JSON(fiber.Map{
		"error": message,
	})
}

// engineError отображает ошибку операции в HTTP-ответ с типом ошибки.
func engineError(c fiber.Ctx, err error) error {
	var opErr *models.Error
	if errors.As(err, &opErr) {
		return c.Status(400).JSON(fiber.Map{
			"error": opErr.Message,
			"kind":  opErr.Kind,
		})
	}
	return c.Status(500).JSON(fiber.Map{
		"error": err.Error(),
	})
}
