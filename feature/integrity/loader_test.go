package integrity

import (
	"net/http/httptest"
	"testing"

	"roster-manager/core/storage/mocks"
	"roster-manager/feature/records/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature_Load(t *testing.T) {
	feature := NewFeature(schemas.NewRegistry(), new(mocks.Client), "test-bucket", zap.NewNop(), nil)
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	// Without a database the route exists but the check cannot run
	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
