package records

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"roster-manager/core/importer"
	"roster-manager/core/reconcile"
	"roster-manager/core/storage/mocks"
	"roster-manager/feature/records/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature_Load(t *testing.T) {
	// The store is only touched by record requests, so nil is enough here
	feature := NewFeature(schemas.NewRegistry(), nil, new(mocks.Client), "test-bucket", zap.NewNop(),
		importer.Config{Strict: true}, reconcile.Config{})
	assert.Equal(t, "records", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/schemas", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 3)
}
