package rayid_test

import (
	"net/http/httptest"
	"testing"

	"roster-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	resp, err := setupApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.HeaderName)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestRayID_Propagated(t *testing.T) {
	incoming := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, incoming)

	resp, err := setupApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, incoming, resp.Header.Get(rayid.HeaderName))
}

func TestRayID_InvalidReplaced(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "not-a-uuid")

	resp, err := setupApp().Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(rayid.HeaderName))
}
