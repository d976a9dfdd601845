package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

var probeClient = &http.Client{Timeout: 2 * time.Second}

// LivenessProbe проверяет, что приложение работает
func LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe проверяет доступность Shape API за шлюзом
func ReadinessProbe(apiURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		resp, err := probeClient.Get(apiURL + "/api/health")
		if err != nil {
			return c.Status(503).JSON(fiber.Map{
				"status": "not ready",
				"error":  "shape api unreachable",
			})
		}
		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return c.Status(503).JSON(fiber.Map{
				"status": "not ready",
			})
		}
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	}
}

// StartupProbe проверяет, что приложение успешно запустилось
func StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
	})
}
