package integrity

import (
	"context"
	"fmt"

	"roster-manager/core/schema"
	"roster-manager/core/storage"
	"roster-manager/core/store"
	"roster-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StructureResult is the outcome of the bucket layout check.
type StructureResult struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing"`
	Error   string   `json:"error,omitempty"`
}

// Report combines the results of every check. A check that could not run carries its
// error instead of a result.
type Report struct {
	Healthy       bool                    `json:"healthy"`
	Structure     StructureResult         `json:"structure"`
	Database      *checks.DatabaseReport  `json:"database,omitempty"`
	DatabaseError string                  `json:"database_error,omitempty"`
	Records       []*checks.RecordsReport `json:"records,omitempty"`
	RecordsError  string                  `json:"records_error,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	registry *schema.Registry
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
}

// NewService creates a new integrity service.
func NewService(registry *schema.Registry, client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		registry: registry,
		client:   client,
		bucket:   bucket,
		logger:   logger,
		db:       db,
	}
}

// CheckStructure returns the export folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.ExportFolders(s.registry))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckDatabase compares the record table with its model.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	return checks.CheckDatabase(s.db)
}

// CheckRecords validates the stored records of every registered schema.
func (s *Service) CheckRecords(ctx context.Context) ([]*checks.RecordsReport, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	st := store.New(s.db)

	var reports []*checks.RecordsReport
	for _, sch := range s.registry.All() {
		report, err := checks.CheckRecords(ctx, st, sch)
		if err != nil {
			return nil, err
		}
		if !report.Valid {
			s.logger.Warn("Stored records failed validation",
				zap.String("base_name", report.BaseName),
				zap.Int("violations", len(report.Violations)),
				zap.Strings("duplicate_keys", report.DuplicateKeys))
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// RunAll runs every check and never fails; errors are recorded in the report.
func (s *Service) RunAll(ctx context.Context) *Report {
	report := &Report{Healthy: true}

	missing, err := s.CheckStructure(ctx)
	switch {
	case err != nil:
		report.Structure = StructureResult{Status: "error", Missing: []string{}, Error: err.Error()}
		report.Healthy = false
	case len(missing) > 0:
		report.Structure = StructureResult{Status: "incomplete", Missing: missing}
		report.Healthy = false
	default:
		report.Structure = StructureResult{Status: "ok", Missing: missing}
	}

	if db, err := s.CheckDatabase(); err != nil {
		report.DatabaseError = err.Error()
		report.Healthy = false
	} else {
		report.Database = db
		report.Healthy = report.Healthy && db.Matched
	}

	// Records can only be read from a migrated table
	if report.Database == nil || report.Database.TableMissing {
		report.RecordsError = "record table is not available"
		report.Healthy = false
		return report
	}
	records, err := s.CheckRecords(ctx)
	if err != nil {
		report.RecordsError = err.Error()
		report.Healthy = false
		return report
	}
	report.Records = records
	for _, r := range records {
		report.Healthy = report.Healthy && r.Valid
	}
	return report
}
