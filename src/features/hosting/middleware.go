package hosting

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the id assigned to every bridge request.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps the caller's request id or assigns a new one.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestid", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// LogAllRequestsMiddleware logs all requests
func LogAllRequestsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		requestID, _ := c.Locals("requestid").(string)

		if status >= 400 {
			slog.Error("HTTP request",
				"request_id", requestID,
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"duration", duration.String(),
				"error", err,
			)
		} else {
			slog.Debug("HTTP request",
				"request_id", requestID,
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"duration", duration.String(),
			)
		}
		return err
	}
}
