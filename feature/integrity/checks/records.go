package checks

import (
	"context"
	"errors"

	"roster-manager/core/reconcile"
	"roster-manager/core/schema"
	"roster-manager/core/validate"
)

// RecordsReport lists stored records that no longer satisfy their schema.
type RecordsReport struct {
	BaseName      string               `json:"base_name"`
	Total         int                  `json:"total"`
	Valid         bool                 `json:"valid"`
	Violations    []validate.Violation `json:"violations"`
	DuplicateKeys []string             `json:"duplicate_keys"`
}

// CheckRecords validates the stored records of s and reports repeated primary keys.
func CheckRecords(ctx context.Context, loader reconcile.Loader, s *schema.Schema) (*RecordsReport, error) {
	records, err := loader.LoadRecords(ctx, s.BaseName())
	if err != nil {
		return nil, err
	}

	report := &RecordsReport{
		BaseName:   s.BaseName(),
		Total:      len(records),
		Violations: []validate.Violation{},
	}

	var verr *validate.ValidationError
	if err := validate.Records(records, s); errors.As(err, &verr) {
		report.Violations = verr.Violations
	}

	// Diffing nothing against the stored records surfaces repeated keys.
	report.DuplicateKeys = reconcile.Diff(s, nil, records, reconcile.Options{}).DuplicateExistingKeys
	report.Valid = len(report.Violations) == 0 && len(report.DuplicateKeys) == 0

	return report, nil
}
