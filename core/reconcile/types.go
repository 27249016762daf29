package reconcile

import (
	"errors"
	"fmt"
	"time"

	"roster-manager/core/schema"
)

// ErrUnknownSchema is returned when a base name has no registered schema.
var ErrUnknownSchema = errors.New("unknown schema")

// Status classifies an incoming record against the stored records.
type Status string

const (
	// StatusNew marks a record whose primary key is not stored yet.
	StatusNew Status = "new"
	// StatusDuplicate marks a record identical to the stored one.
	StatusDuplicate Status = "duplicate"
	// StatusModified marks a record that differs from the stored one.
	StatusModified Status = "modified"
	// StatusRemoved marks a stored record absent from the import.
	// Removed results only appear in Report.Removed.
	StatusRemoved Status = "removed"
)

// Result is the classification of a single record.
type Result struct {
	// Status is the classification.
	Status Status `json:"status"`

	// Key is the stringified primary key.
	Key string `json:"key"`

	// Changes maps each changed field to an "<old> → <new>" description.
	// It is empty (never nil) for new, duplicate and removed results.
	Changes map[string]string `json:"changes"`

	// Obj is the incoming record for new and modified results, and the stored record
	// for duplicate and removed results.
	Obj schema.Record `json:"obj"`
}

// Report is the outcome of diffing one import against the stored records.
type Report struct {
	// BaseName is the schema the import was diffed with.
	BaseName string `json:"baseName"`

	// Results holds one entry per incoming record, modified entries first.
	Results []Result `json:"results"`

	// Removed holds stored records with no incoming counterpart.
	// Only populated with RemovalsReport.
	Removed []Result `json:"removed"`

	// DuplicateExistingKeys lists primary keys that occur more than once in the stored
	// records. The last stored record with such a key was used for comparison.
	DuplicateExistingKeys []string `json:"duplicateExistingKeys"`

	// MissingKeys lists the indexes of incoming records without a primary key. They have
	// no identity to diff by and appear in no result.
	MissingKeys []int `json:"missingKeys"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	// Total is the number of incoming records.
	Total int `json:"total"`

	New       int `json:"new"`
	Duplicate int `json:"duplicate"`
	Modified  int `json:"modified"`
	Removed   int `json:"removed"`
}

// HasChanges reports whether applying the report would write anything.
func (s Summary) HasChanges() bool {
	return s.New > 0 || s.Modified > 0 || s.Removed > 0
}

// RemovalPolicy decides what happens to stored records missing from an import.
type RemovalPolicy string

const (
	// RemovalsIgnore does not look for removed records.
	RemovalsIgnore RemovalPolicy = "ignore"
	// RemovalsReport lists removed records in Report.Removed.
	RemovalsReport RemovalPolicy = "report"
)

// ParseRemovalPolicy parses a policy name. The empty string means RemovalsIgnore.
func ParseRemovalPolicy(s string) (RemovalPolicy, error) {
	switch RemovalPolicy(s) {
	case "", RemovalsIgnore:
		return RemovalsIgnore, nil
	case RemovalsReport:
		return RemovalsReport, nil
	default:
		return "", fmt.Errorf("unknown removal policy %q", s)
	}
}

// Options controls a diff.
type Options struct {
	// Removals is the removal policy. The zero value ignores removals.
	Removals RemovalPolicy
}

// ActionType represents the type of store mutation.
type ActionType string

const (
	// ActionInsert stores a new record.
	ActionInsert ActionType = "insert"
	// ActionUpdate overwrites a modified record.
	ActionUpdate ActionType = "update"
	// ActionDelete removes a stored record missing from the import.
	ActionDelete ActionType = "delete"
)

// Action represents a planned store mutation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the primary key of the record.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Record is the record to write. Empty for deletions.
	Record schema.Record `json:"record,omitempty"`
}

// Plan contains a diff report and the store mutations derived from it.
type Plan struct {
	// Report is the diff the plan was built from.
	Report *Report `json:"report"`

	// Actions contains planned mutations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts of planned actions.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	Inserts int `json:"inserts"`
	Updates int `json:"updates"`
	Deletes int `json:"deletes"`
}

// ApplyOptions controls plan building and execution.
type ApplyOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoPurge plans deletion of removed records. It needs a report built with
	// RemovalsReport.
	DoPurge bool

	// Confirmed indicates the user has reviewed the plan.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}

// Config holds configuration for reconciliation.
type Config struct {
	// Removals is the default removal policy (ignore, report).
	Removals string `mapstructure:"removals" default:"ignore"`
	// CacheTTLSeconds is how long stored-record indices are cached. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// CacheTTL returns the configured cache TTL.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
