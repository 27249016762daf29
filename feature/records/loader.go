package records

import (
	"roster-manager/core/importer"
	"roster-manager/core/reconcile"
	"roster-manager/core/schema"
	"roster-manager/core/storage"
	"roster-manager/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves every registered schema under /records/:baseName.
type Feature struct {
	handler *Handler
}

// NewFeature wires the records service and its handler.
func NewFeature(
	registry *schema.Registry,
	st *store.Store,
	client storage.Client,
	bucket string,
	logger *zap.Logger,
	importCfg importer.Config,
	reconcileCfg reconcile.Config,
) *Feature {
	svc := NewService(registry, st, client, bucket, logger, importCfg, reconcileCfg)
	return &Feature{handler: NewHandler(svc)}
}

func (f *Feature) Name() string {
	return "records"
}

// IsEnabled is always true; record types are enabled by registering a schema.
func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
