// Package rayid tags every request with a unique identifier.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response (and accepted request) header carrying the ray id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the fiber.Ctx locals key logger.WithRayID reads.
	LocalsKey = "ray_id"
)

// New returns a middleware that stores a ray id in the request locals and echoes it in
// the response headers. A valid incoming X-Ray-ID is reused so callers can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
