package integrity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"roster-manager/core/database"
	"roster-manager/core/schema"
	"roster-manager/core/storage/mocks"
	"roster-manager/core/store"
	"roster-manager/feature/records/schemas"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *gorm.DB) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: "file::memory:"})
	require.NoError(t, err)
	require.NoError(t, store.New(db).Migrate(context.Background()))

	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(schemas.NewRegistry(), mockClient, "test-bucket", zap.NewNop(), db)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, db
}

func emptyListing(mockClient *mocks.Client) {
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing())
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	emptyListing(mockClient)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "checked", body["status"])
	assert.Len(t, body["missing"], 3)
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	emptyListing(mockClient)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 3)
}

func TestHandleStructureCheck_BucketError(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("connection refused"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleDatabaseCheck(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/database", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "roster_records", body["table"])
}

func TestHandleRecordsCheck(t *testing.T) {
	app, _, db := setupTestApp(t)

	// A stored record without its primary key field fails validation.
	err := store.New(db).UpsertRecord(context.Background(), "instructors", "ghost", schema.Record{"first_name": "Boo"})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/records", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 3)
	assert.Equal(t, "instructors", body[1]["base_name"])
	assert.Equal(t, false, body[1]["valid"])
	assert.Equal(t, true, body[0]["valid"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	structure := body["structure"].(map[string]any)
	assert.Equal(t, "error", structure["status"])
	assert.Equal(t, false, body["healthy"])
	assert.Contains(t, body, "database")
	assert.Len(t, body["records"], 3)
}
