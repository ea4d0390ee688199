package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vbms/inventory-service/pkg/logger"
)

// StructuredLoggingMiddleware logs one entry per completed request. The level
// follows the response status so 4xx/5xx stand out in aggregation.
func StructuredLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		statusCode := c.Response().StatusCode()

		logEvent := logger.Info(c.UserContext())
		if statusCode >= 500 {
			logEvent = logger.Error(c.UserContext())
		} else if statusCode >= 400 {
			logEvent = logger.Warn(c.UserContext())
		}

		logEvent.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", statusCode).
			Dur("duration", duration).
			Int("response_size", len(c.Response().Body())).
			Str("request_id", c.Get("X-Request-Id")).
			Msg("Gateway request completed")

		if err != nil {
			logger.Error(c.UserContext()).
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("Gateway request error")
		}

		return err
	}
}
