package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "roster", cfg.Storage.Bucket)
	assert.True(t, cfg.Import.Strict)
	assert.Equal(t, 20, cfg.Import.TwoDigitYearPivot)
	assert.Equal(t, "ignore", cfg.Reconcile.Removals)
	assert.Equal(t, 60, cfg.Reconcile.CacheTTLSeconds)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "IMPORT_STRICT=false\nRECONCILE_REMOVALS=report\nDATABASE_DRIVER=sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("IMPORT_STRICT")
		os.Unsetenv("RECONCILE_REMOVALS")
		os.Unsetenv("DATABASE_DRIVER")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.False(t, cfg.Import.Strict)
	assert.Equal(t, "report", cfg.Reconcile.Removals)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("IMPORT_TWO_DIGIT_YEAR_PIVOT", "5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Import.TwoDigitYearPivot)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "reconcile:\n  removals: report\n  cache_ttl_seconds: 0\nstorage:\n  bucket: rosters-2024\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roster.yaml"), []byte(yaml), 0o600))
	t.Setenv("STORAGE_BUCKET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "report", cfg.Reconcile.Removals)
	assert.Equal(t, 0, cfg.Reconcile.CacheTTLSeconds)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"unknown driver", "DATABASE_DRIVER", "postgres", "unsupported database driver"},
		{"unknown removal policy", "RECONCILE_REMOVALS", "delete", "reconcile.removals"},
		{"negative ttl", "RECONCILE_CACHE_TTL_SECONDS", "-1", "cache_ttl_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig(t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
