package reconcile

import (
	"context"
	"fmt"
	"testing"
	"time"

	"roster-manager/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMutator records single-item writes.
type mockMutator struct {
	upserted []string
	deleted  []string
	failOn   string
}

func (m *mockMutator) UpsertRecord(ctx context.Context, baseName, key string, rec schema.Record) error {
	if key == m.failOn {
		return fmt.Errorf("write refused")
	}
	m.upserted = append(m.upserted, key)
	return nil
}

func (m *mockMutator) DeleteRecord(ctx context.Context, baseName, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

// mockBatchMutator additionally supports batch writes.
type mockBatchMutator struct {
	mockMutator
	batchUpserts [][]string
	batchDeletes [][]string
}

func (m *mockBatchMutator) UpsertBatch(ctx context.Context, baseName string, keys []string, records []schema.Record) error {
	m.batchUpserts = append(m.batchUpserts, keys)
	return nil
}

func (m *mockBatchMutator) DeleteBatch(ctx context.Context, baseName string, keys []string) error {
	m.batchDeletes = append(m.batchDeletes, keys)
	return nil
}

func sampleReport() *Report {
	existing := []schema.Record{
		{"utorid": "same", "email": "s@x"},
		{"utorid": "changed", "email": "c@x", "first_name": "Old"},
		{"utorid": "gone"},
	}
	incoming := []schema.Record{
		{"utorid": "same", "email": "s@x"},
		{"utorid": "changed", "email": "c@y", "first_name": "New"},
		{"utorid": "fresh"},
	}
	return Diff(instructorSchema(), incoming, existing, Options{Removals: RemovalsReport})
}

func TestBuildPlan(t *testing.T) {
	plan := BuildPlan(sampleReport(), ApplyOptions{})

	require.Len(t, plan.Actions, 2)
	assert.Equal(t, Action{
		Type:   ActionUpdate,
		Key:    "changed",
		Reason: "changed: email, first_name",
		Record: schema.Record{"utorid": "changed", "email": "c@y", "first_name": "New"},
	}, plan.Actions[0])
	assert.Equal(t, ActionInsert, plan.Actions[1].Type)
	assert.Equal(t, "fresh", plan.Actions[1].Key)
	assert.Equal(t, PlanSummary{Inserts: 1, Updates: 1}, plan.Summary)
}

func TestBuildPlan_Purge(t *testing.T) {
	plan := BuildPlan(sampleReport(), ApplyOptions{DoPurge: true})

	require.Len(t, plan.Actions, 3)
	assert.Equal(t, Action{Type: ActionDelete, Key: "gone", Reason: "missing from import"}, plan.Actions[2])
	assert.Equal(t, PlanSummary{Inserts: 1, Updates: 1, Deletes: 1}, plan.Summary)
}

func TestApplyPlan_ConfirmationGating(t *testing.T) {
	m := &mockMutator{}
	plan := BuildPlan(sampleReport(), ApplyOptions{DoPurge: true})

	// Not confirmed - should not execute
	executed, err := ApplyPlan(context.Background(), "instructors", m, plan, ApplyOptions{})
	assert.NoError(t, err)
	assert.Equal(t, 0, executed)

	// Confirmed but dry-run - should not execute
	executed, err = ApplyPlan(context.Background(), "instructors", m, plan, ApplyOptions{Confirmed: true, DryRun: true})
	assert.NoError(t, err)
	assert.Equal(t, 0, executed)
	assert.Empty(t, m.upserted)
	assert.Empty(t, m.deleted)

	// Confirmed and not dry-run - should execute
	executed, err = ApplyPlan(context.Background(), "instructors", m, plan, ApplyOptions{Confirmed: true})
	assert.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.Equal(t, []string{"changed", "fresh"}, m.upserted)
	assert.Equal(t, []string{"gone"}, m.deleted)
}

func TestApplyPlan_UsesBatch(t *testing.T) {
	m := &mockBatchMutator{}
	plan := BuildPlan(sampleReport(), ApplyOptions{DoPurge: true})

	executed, err := ApplyPlan(context.Background(), "instructors", m, plan, ApplyOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 3, executed)

	assert.Equal(t, [][]string{{"changed", "fresh"}}, m.batchUpserts)
	assert.Equal(t, [][]string{{"gone"}}, m.batchDeletes)
	assert.Empty(t, m.upserted, "Should NOT use individual writes")
	assert.Empty(t, m.deleted, "Should NOT use individual deletes")
}

func TestApplyPlan_StopsOnError(t *testing.T) {
	m := &mockMutator{failOn: "fresh"}
	plan := BuildPlan(sampleReport(), ApplyOptions{})

	executed, err := ApplyPlan(context.Background(), "instructors", m, plan, ApplyOptions{Confirmed: true})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "instructors record fresh")
	assert.Equal(t, 1, executed)
}

func TestReconcileAndApply_InvalidatesCache(t *testing.T) {
	s := instructorSchema()
	stored := []schema.Record{{"utorid": "a"}}
	loads := 0
	loader := LoaderFunc(func(ctx context.Context, baseName string) ([]schema.Record, error) {
		loads++
		return stored, nil
	})
	cache := NewCache(time.Minute)
	m := &mockMutator{}

	incoming := []schema.Record{{"utorid": "a"}, {"utorid": "b"}}

	plan, executed, err := ReconcileAndApply(context.Background(), s, incoming, cache, loader, m, Options{}, ApplyOptions{Confirmed: true, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 0, executed)
	assert.Equal(t, 1, plan.Summary.Inserts)

	_, err = cache.GetOrLoad(context.Background(), "instructors", loader)
	require.NoError(t, err)
	assert.Equal(t, 1, loads, "dry run keeps the cached records")

	_, executed, err = ReconcileAndApply(context.Background(), s, incoming, cache, loader, m, Options{}, ApplyOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
	assert.Equal(t, []string{"b"}, m.upserted)

	_, err = cache.GetOrLoad(context.Background(), "instructors", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, loads, "writes drop the cached records")
}

func TestBuildPlan_SkipsRecordsWithoutKey(t *testing.T) {
	incoming := []schema.Record{{"first_name": "Boo"}, {"first_name": "King Boo"}, {"utorid": "fresh"}}
	report := Diff(instructorSchema(), incoming, nil, Options{})

	plan := BuildPlan(report, ApplyOptions{})
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, "fresh", plan.Actions[0].Key)
	assert.Equal(t, PlanSummary{Inserts: 1}, plan.Summary)
}
