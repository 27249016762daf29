package integrity

import (
	"roster-manager/core/schema"
	"roster-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature mounts the integrity checks under /integrity.
type Feature struct {
	handler *Handler
}

// NewFeature wires the integrity service. db may be nil, in which case only the
// structure check can succeed.
func NewFeature(registry *schema.Registry, client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Feature {
	return &Feature{handler: NewHandler(NewService(registry, client, bucket, logger, db))}
}

func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled is always true; the checks are read-only unless fix is requested.
func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
