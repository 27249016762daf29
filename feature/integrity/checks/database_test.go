package checks

import (
	"context"
	"testing"

	"roster-manager/core/database"
	"roster-manager/core/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: "file::memory:"})
	require.NoError(t, err)
	return db
}

func TestCheckDatabase_NilDB(t *testing.T) {
	report, err := CheckDatabase(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckDatabase_TableMissing(t *testing.T) {
	report, err := CheckDatabase(setupSQLite(t))
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.True(t, report.TableMissing)
	assert.Equal(t, "roster_records", report.Table)
}

func TestCheckDatabase_Migrated(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, store.New(db).Migrate(context.Background()))

	report, err := CheckDatabase(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Empty(t, report.MissingColumns)
	assert.Empty(t, report.Errors)
}

func TestCheckDatabase_MissingColumns(t *testing.T) {
	db := setupSQLite(t)
	require.NoError(t, db.Exec("CREATE TABLE roster_records (id integer primary key, base_name text)").Error)

	report, err := CheckDatabase(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.False(t, report.TableMissing)
	assert.Equal(t, []string{"batch_id", "created_at", "data", "record_key", "updated_at"}, report.MissingColumns)
}
