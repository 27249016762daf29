// Package export prepares canonical records for writing to a file.
//
// Columns follow the schema key order. When any record carries the passthrough identifier
// it is emitted as the first column so a re-import can match stored rows.
package export

import (
	"roster-manager/core/schema"
	"roster-manager/core/utils"
)

// Columns returns the output columns for records.
func Columns(s *schema.Schema, records []schema.Record) []string {
	keys := s.Keys()
	pt := s.PassthroughKey()
	for _, rec := range records {
		if _, ok := rec[pt]; ok {
			return append([]string{pt}, keys...)
		}
	}
	return keys
}

// Rows converts records to a header row and string cells. Missing values are empty.
func Rows(s *schema.Schema, records []schema.Record) ([]string, [][]string) {
	header := Columns(s, records)
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(header))
		for j, col := range header {
			row[j] = utils.ToString(rec[col])
		}
		rows[i] = row
	}
	return header, rows
}

// Objects restricts records to the output columns. Missing schema keys are set to nil
// so every object has the same shape.
func Objects(s *schema.Schema, records []schema.Record) []schema.Record {
	header := Columns(s, records)
	out := make([]schema.Record, len(records))
	for i, rec := range records {
		obj := make(schema.Record, len(header))
		for _, col := range header {
			if col == s.PassthroughKey() {
				if v, ok := rec[col]; ok {
					obj[col] = v
				}
				continue
			}
			obj[col] = rec[col]
		}
		out[i] = obj
	}
	return out
}
