package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"roster-manager/core/schema"
)

// Mutator writes reconciled records to the record store.
type Mutator interface {
	// UpsertRecord inserts rec or replaces the stored record with the same key.
	UpsertRecord(ctx context.Context, baseName, key string, rec schema.Record) error
	// DeleteRecord removes the stored record with the given key.
	DeleteRecord(ctx context.Context, baseName, key string) error
}

// BatchUpserter is implemented by mutators that can write many records at once.
type BatchUpserter interface {
	UpsertBatch(ctx context.Context, baseName string, keys []string, records []schema.Record) error
}

// BatchDeleter is implemented by mutators that can delete many records at once.
type BatchDeleter interface {
	DeleteBatch(ctx context.Context, baseName string, keys []string) error
}

// ReconcileWithPlan diffs incoming against the stored records and returns a plan.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(
	ctx context.Context,
	s *schema.Schema,
	incoming []schema.Record,
	cache *Cache,
	loader Loader,
	diffOpts Options,
	opts ApplyOptions,
) (*Plan, error) {
	existing, err := cache.GetOrLoad(ctx, s.BaseName(), loader)
	if err != nil {
		return nil, err
	}
	return BuildPlan(Diff(s, incoming, existing, diffOpts), opts), nil
}

// BuildPlan derives store actions from a report. New records become inserts, modified
// records become updates and, with DoPurge, removed records become deletions.
func BuildPlan(report *Report, opts ApplyOptions) *Plan {
	plan := &Plan{Report: report, Actions: []Action{}}

	for _, r := range report.Results {
		switch r.Status {
		case StatusNew:
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionInsert,
				Key:    r.Key,
				Reason: "not stored",
				Record: r.Obj,
			})
			plan.Summary.Inserts++
		case StatusModified:
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionUpdate,
				Key:    r.Key,
				Reason: changedReason(r.Changes),
				Record: r.Obj,
			})
			plan.Summary.Updates++
		}
	}

	if opts.DoPurge {
		for _, r := range report.Removed {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionDelete,
				Key:    r.Key,
				Reason: "missing from import",
			})
			plan.Summary.Deletes++
		}
	}

	return plan
}

// ApplyPlan executes the actions in a plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, baseName string, m Mutator, plan *Plan, opts ApplyOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	var (
		writeKeys    []string
		writeRecords []schema.Record
		deleteKeys   []string
	)
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionInsert, ActionUpdate:
			writeKeys = append(writeKeys, action.Key)
			writeRecords = append(writeRecords, action.Record)
		case ActionDelete:
			deleteKeys = append(deleteKeys, action.Key)
		}
	}

	if len(writeKeys) > 0 {
		if batch, ok := m.(BatchUpserter); ok {
			if err := batch.UpsertBatch(ctx, baseName, writeKeys, writeRecords); err != nil {
				return executed, fmt.Errorf("failed to batch write %s records: %w", baseName, err)
			}
			executed += len(writeKeys)
		} else {
			for i, key := range writeKeys {
				if err := m.UpsertRecord(ctx, baseName, key, writeRecords[i]); err != nil {
					return executed, fmt.Errorf("failed to write %s record %s: %w", baseName, key, err)
				}
				executed++
			}
		}
	}

	if len(deleteKeys) > 0 {
		if batch, ok := m.(BatchDeleter); ok {
			if err := batch.DeleteBatch(ctx, baseName, deleteKeys); err != nil {
				return executed, fmt.Errorf("failed to batch delete %s records: %w", baseName, err)
			}
			executed += len(deleteKeys)
		} else {
			for _, key := range deleteKeys {
				if err := m.DeleteRecord(ctx, baseName, key); err != nil {
					return executed, fmt.Errorf("failed to delete %s record %s: %w", baseName, key, err)
				}
				executed++
			}
		}
	}

	return executed, nil
}

// ReconcileAndApply plans and optionally applies actions, then drops the cached stored
// records for the schema when anything was written.
func ReconcileAndApply(
	ctx context.Context,
	s *schema.Schema,
	incoming []schema.Record,
	cache *Cache,
	loader Loader,
	m Mutator,
	diffOpts Options,
	opts ApplyOptions,
) (*Plan, int, error) {
	plan, err := ReconcileWithPlan(ctx, s, incoming, cache, loader, diffOpts, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, s.BaseName(), m, plan, opts)
	if executed > 0 {
		cache.Invalidate(s.BaseName())
	}
	return plan, executed, err
}

func changedReason(changes map[string]string) string {
	fields := make([]string, 0, len(changes))
	for f := range changes {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "changed: " + strings.Join(fields, ", ")
}
