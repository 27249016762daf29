package auth_test

import (
	"net/http/httptest"
	"testing"

	"roster-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/schemas", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		header string
		query  string
		want   int
	}{
		{"Disabled", "", "", "", fiber.StatusOK},
		{"Missing", "secret", "", "", fiber.StatusUnauthorized},
		{"Wrong", "secret", "nope", "", fiber.StatusUnauthorized},
		{"Header", "secret", "secret", "", fiber.StatusOK},
		{"Query", "secret", "", "secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/schemas"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}

			resp, err := setupApp(tt.key).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
