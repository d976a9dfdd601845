package proxy

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"shape-api/internal/common/middleware"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Proxy Handler
// ============================================================

// Лимит покрывает ожидание внешней модели на стороне Shape API (до 30с).
var client = &http.Client{Timeout: 60 * time.Second}

// ProxyTo прокси запрос к другому сервису
func ProxyTo(targetURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return forwardRequest(c, targetURL)
	}
}

// forwardRequest пересылает JSON-тело как есть и возвращает ответ сервиса.
func forwardRequest(c fiber.Ctx, targetURL string) error {
	log.Printf("[PROXY] %s %s -> %s", c.Method(), c.Path(), targetURL)

	req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		log.Printf("[PROXY] build request error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "proxy failed"})
	}

	if contentType := c.Get("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id := c.Get(middleware.RequestIDHeader); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[PROXY] upstream error: %v", err)
		return c.Status(502).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return copyResponse(c, resp)
}

func copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[PROXY] read response error: %v", err)
		return c.Status(502).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			c.Set(key, values[0])
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
