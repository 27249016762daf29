package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for cfg. The debug level switches to zap's development
// preset (caller, stack traces on warn); other levels use the production preset.
func New(cfg *Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		parsed, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	zc := zap.NewProductionConfig()
	if level.Level() == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	zc.Encoding = "json"
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}

	// Same keys in both presets so log shippers need one mapping
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.MessageKey = "message"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}

// WithBaseName returns a logger tagged with the record type being processed.
func WithBaseName(l *zap.Logger, baseName string) *zap.Logger {
	if baseName == "" {
		return l
	}
	return l.With(zap.String("base_name", baseName))
}
