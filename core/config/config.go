package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"roster-manager/core/database"
	"roster-manager/core/importer"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/server"
	"roster-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration, one section per package.
type Config struct {
	Server    server.Config    `mapstructure:"server"`
	Storage   storage.Config   `mapstructure:"storage"`
	Log       logger.Config    `mapstructure:"log"`
	Database  database.Config  `mapstructure:"database"`
	Import    importer.Config  `mapstructure:"import"`
	Reconcile reconcile.Config `mapstructure:"reconcile"`
}

// LoadConfig reads configuration from dir. Sources, lowest precedence first: struct tag
// defaults, an optional roster.yaml, a .env file, then the process environment.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetConfigName("roster")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// IMPORT_STRICT -> import.strict
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that would only fail later, on first use.
func (c *Config) Validate() error {
	if !c.Database.IsValidDriver() {
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if _, err := reconcile.ParseRemovalPolicy(c.Reconcile.Removals); err != nil {
		return fmt.Errorf("reconcile.removals: %w", err)
	}
	if c.Reconcile.CacheTTLSeconds < 0 {
		return fmt.Errorf("reconcile.cache_ttl_seconds must not be negative")
	}
	return nil
}

// setDefaults registers every mapstructure key with its default tag. Keys must be known
// to viper for AutomaticEnv to pick them up during Unmarshal.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		if prefix != "" {
			tag = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, tag)
			continue
		}
		v.SetDefault(tag, field.Tag.Get("default"))
	}
}
