package logger_test

import (
	"net/http/httptest"
	"testing"

	"roster-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       logger.Config
		debugging bool
	}{
		{"Debug Console", logger.Config{Level: "debug", Format: "console"}, true},
		{"Info JSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Default Level", logger.Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debugging, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		logger.WithRayID(base, c).Info("handled")
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ray-123", logs.All()[0].ContextMap()["ray_id"])
}

func TestNew_Levels(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = logger.New(&logger.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestWithBaseName(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	logger.WithBaseName(base, "instructors").Info("imported")
	logger.WithBaseName(base, "").Info("untagged")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "instructors", logs.All()[0].ContextMap()["base_name"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "base_name")
}
