package checks

import (
	"fmt"
	"sort"

	"roster-manager/core/store"

	"gorm.io/gorm"
)

// DatabaseReport is the result of comparing the record table with its model.
type DatabaseReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	TableMissing   bool     `json:"table_missing"`
	MissingColumns []string `json:"missing_columns"`
	Errors         []string `json:"errors"`
}

// CheckDatabase verifies the record table using the GORM model as the source of truth.
func CheckDatabase(db *gorm.DB) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	model := &store.StoredRecord{}
	report := &DatabaseReport{
		Table:          model.TableName(),
		Matched:        true,
		MissingColumns: []string{},
		Errors:         []string{},
	}

	migrator := db.Migrator()
	if !migrator.HasTable(model) {
		report.Matched = false
		report.TableMissing = true
		return report, nil
	}

	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("failed to parse %s model: %w", report.Table, err)
	}

	actual, err := migrator.ColumnTypes(model)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", report.Table, err))
		report.Matched = false
		return report, nil
	}
	present := make(map[string]struct{}, len(actual))
	for _, col := range actual {
		present[col.Name()] = struct{}{}
	}

	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" {
			continue
		}
		if _, ok := present[field.DBName]; !ok {
			report.MissingColumns = append(report.MissingColumns, field.DBName)
			report.Matched = false
		}
	}
	sort.Strings(report.MissingColumns)

	return report, nil
}
