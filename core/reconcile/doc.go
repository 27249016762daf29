// Package reconcile compares a normalized import against the records already stored for
// the same schema.
//
// The engine is generic: one Diff parameterized by a schema.Schema serves every record
// type, and DiffImport dispatches by base name through a schema.Registry.
//
// # Classification
//
// Stored records are indexed by stringified primary key (the last record wins when a key
// repeats; repeated keys are listed in Report.DuplicateExistingKeys). Each incoming record
// is then classified:
//
//   - new: no stored record has its key. Obj is the incoming record.
//   - duplicate: every schema field compares equal. Obj is the stored record.
//   - modified: at least one field differs. Obj is the incoming record and Changes maps
//     each differing field to a description such as `"Peach" → "Daisy"`.
//
// Field values are compared in string form and a missing field equals the empty string.
// Results list modified records first, then the rest, each in incoming order.
//
// With RemovalsReport, stored records that the import does not mention are listed in
// Report.Removed. They never appear in Report.Results.
//
// # Plan and Apply
//
// BuildPlan turns a report into store actions (insert, update and, with DoPurge, delete).
// ApplyPlan executes them through a Mutator, batching when the mutator supports it, and
// only when the plan was confirmed and is not a dry run.
//
// # Cache
//
// Cache keeps the stored records per base name for a TTL. Concurrent misses for the same
// base name are collapsed with singleflight so a burst of diff requests loads the store once.
//
// # Usage Example
//
//	report, err := reconcile.DiffImport(registry, "instructors", incoming, existing, reconcile.Options{})
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, s, incoming, cache, store, reconcile.Options{}, applyOpts)
//	executed, err := reconcile.ApplyPlan(ctx, s.BaseName(), store, plan, applyOpts)
package reconcile
