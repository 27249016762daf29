package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"roster-manager/core/schema"
	"roster-manager/core/utils"
)

// changeArrow separates the old and new value in a change description.
const changeArrow = " → "

// DiffImport looks up the schema for baseName and diffs incoming against
// existing[baseName]. It only fails for an unknown base name.
func DiffImport(reg *schema.Registry, baseName string, incoming []schema.Record, existing map[string][]schema.Record, opts Options) (*Report, error) {
	s, ok := reg.Get(baseName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, baseName)
	}
	return Diff(s, incoming, existing[baseName], opts), nil
}

// Diff classifies every incoming record against the existing records of the same schema.
//
// Records are matched by stringified primary key. Results are ordered with modified records
// first and all others after, each group keeping incoming order. Incoming records with a
// blank primary key are not classified; their indexes are listed in MissingKeys. Stored
// records with a blank key are never matched or reported as removed.
func Diff(s *schema.Schema, incoming, existing []schema.Record, opts Options) *Report {
	idx := buildIndex(s, existing)

	report := &Report{
		BaseName:              s.BaseName(),
		Results:               make([]Result, 0, len(incoming)),
		Removed:               []Result{},
		DuplicateExistingKeys: idx.duplicates,
		MissingKeys:           []int{},
	}

	var modified, others []Result
	seen := make(map[string]struct{}, len(incoming))
	for i, rec := range incoming {
		key := PrimaryKeyOf(s, rec)
		if isBlankKey(key) {
			report.MissingKeys = append(report.MissingKeys, i)
			continue
		}
		seen[key] = struct{}{}

		old, found := idx.records[key]
		if !found {
			others = append(others, Result{Status: StatusNew, Key: key, Changes: map[string]string{}, Obj: rec})
			report.Summary.New++
			continue
		}

		changes := CompareRecords(s, old, rec)
		if len(changes) == 0 {
			others = append(others, Result{Status: StatusDuplicate, Key: key, Changes: changes, Obj: old})
			report.Summary.Duplicate++
			continue
		}
		modified = append(modified, Result{Status: StatusModified, Key: key, Changes: changes, Obj: rec})
		report.Summary.Modified++
	}
	report.Results = append(append(report.Results, modified...), others...)
	report.Summary.Total = len(incoming)

	if opts.Removals == RemovalsReport {
		for _, key := range idx.order {
			if _, ok := seen[key]; ok {
				continue
			}
			report.Removed = append(report.Removed, Result{
				Status:  StatusRemoved,
				Key:     key,
				Changes: map[string]string{},
				Obj:     idx.records[key],
			})
		}
		report.Summary.Removed = len(report.Removed)
	}

	return report
}

// CompareRecords returns a change description for every schema key whose stringified
// value differs between old and updated. A missing key compares equal to the empty string.
func CompareRecords(s *schema.Schema, old, updated schema.Record) map[string]string {
	changes := make(map[string]string)
	for _, k := range s.Keys() {
		oldVal, inOld := old[k]
		newVal, inNew := updated[k]
		if !inOld && !inNew {
			continue
		}
		if utils.ToString(oldVal) == utils.ToString(newVal) {
			continue
		}
		changes[k] = displayValue(oldVal, inOld) + changeArrow + displayValue(newVal, inNew)
	}
	return changes
}

// PrimaryKeyOf returns the stringified primary key of rec.
func PrimaryKeyOf(s *schema.Schema, rec schema.Record) string {
	return utils.ToString(rec[s.PrimaryKey()])
}

func isBlankKey(key string) bool {
	return strings.TrimSpace(key) == ""
}

// displayValue renders a value as JSON, so strings appear quoted. Missing values render
// as an empty string.
func displayValue(v any, present bool) string {
	if !present {
		v = ""
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return strconv.Quote(utils.ToString(v))
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// existingIndex holds stored records by primary key.
type existingIndex struct {
	records map[string]schema.Record
	// order lists distinct keys in first-seen order.
	order []string
	// duplicates lists keys seen more than once, in first-repeat order.
	duplicates []string
}

// buildIndex indexes records by primary key. For repeated keys the last record wins.
func buildIndex(s *schema.Schema, records []schema.Record) *existingIndex {
	idx := &existingIndex{
		records:    make(map[string]schema.Record, len(records)),
		order:      make([]string, 0, len(records)),
		duplicates: []string{},
	}
	reported := make(map[string]struct{})
	for _, rec := range records {
		key := PrimaryKeyOf(s, rec)
		if isBlankKey(key) {
			continue
		}
		if _, dup := idx.records[key]; dup {
			if _, ok := reported[key]; !ok {
				reported[key] = struct{}{}
				idx.duplicates = append(idx.duplicates, key)
			}
		} else {
			idx.order = append(idx.order, key)
		}
		idx.records[key] = rec
	}
	return idx
}
