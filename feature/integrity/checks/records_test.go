package checks

import (
	"context"
	"errors"
	"testing"

	"roster-manager/core/reconcile"
	"roster-manager/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instructorSchema() *schema.Schema {
	return schema.MustNew(schema.Definition{
		BaseName:     "instructors",
		Keys:         []string{"first_name", "last_name", "utorid", "email"},
		RequiredKeys: []string{"utorid"},
		PrimaryKey:   "utorid",
	})
}

func loaderOf(records ...schema.Record) reconcile.Loader {
	return reconcile.LoaderFunc(func(ctx context.Context, baseName string) ([]schema.Record, error) {
		return records, nil
	})
}

func TestCheckRecords_Valid(t *testing.T) {
	report, err := CheckRecords(context.Background(), loaderOf(
		schema.Record{"utorid": "itasmeM"},
		schema.Record{"utorid": "IBakedACake"},
	), instructorSchema())
	require.NoError(t, err)

	assert.True(t, report.Valid)
	assert.Equal(t, 2, report.Total)
	assert.Empty(t, report.Violations)
	assert.Empty(t, report.DuplicateKeys)
}

func TestCheckRecords_Problems(t *testing.T) {
	report, err := CheckRecords(context.Background(), loaderOf(
		schema.Record{"utorid": "itasmeM", "email": "m@mk.com"},
		schema.Record{"first_name": "Daisy"},
		schema.Record{"utorid": "itasmeM", "email": "mario@mk.com"},
	), instructorSchema())
	require.NoError(t, err)

	assert.False(t, report.Valid)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, 1, report.Violations[0].Index)
	assert.Equal(t, "utorid", report.Violations[0].Field)
	assert.Equal(t, []string{"itasmeM"}, report.DuplicateKeys)
}

func TestCheckRecords_LoadError(t *testing.T) {
	loader := reconcile.LoaderFunc(func(ctx context.Context, baseName string) ([]schema.Record, error) {
		return nil, errors.New("table gone")
	})

	_, err := CheckRecords(context.Background(), loader, instructorSchema())
	assert.EqualError(t, err, "table gone")
}
