// Package requestlog logs every request with its ray id, status and duration.
package requestlog

import (
	"errors"
	"time"

	"roster-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware that logs each request once it has been handled.
// Register it after rayid so the entries carry the ray id.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet, so the status is still the default
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		rl := logger.WithRayID(l, c)
		switch {
		case err != nil:
			rl.Error("Request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusInternalServerError:
			rl.Error("Request completed", fields...)
		case status >= fiber.StatusBadRequest:
			rl.Warn("Request completed", fields...)
		default:
			rl.Info("Request completed", fields...)
		}
		return err
	}
}
