// Package mapper turns raw spreadsheet rows into canonical records.
//
// A RowMapper is bound to one schema and owns an arena of header resolutions. Header
// strings are matched once and the result, including "no match", is reused for every
// later row. The arena is only valid for one header vocabulary: create a new RowMapper
// (or call Reset) before mapping rows from a different source file.
package mapper

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"roster-manager/core/header"
	"roster-manager/core/schema"
)

// ErrUnmatchedRow is wrapped by UnmatchedRowError.
var ErrUnmatchedRow = errors.New("row has no recognised columns")

// UnmatchedRowError is returned in strict mode for a row that contributes nothing.
type UnmatchedRowError struct {
	Headers []string
}

func (e *UnmatchedRowError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnmatchedRow, strings.Join(e.Headers, ", "))
}

func (e *UnmatchedRowError) Unwrap() error {
	return ErrUnmatchedRow
}

// Resolutions caches header resolutions for a single header vocabulary.
type Resolutions map[string]header.Resolution

// RowMapper maps raw rows onto a schema. It is not safe for concurrent use.
type RowMapper struct {
	schema      *schema.Schema
	resolutions Resolutions
}

// New creates a RowMapper with an empty arena.
func New(s *schema.Schema) *RowMapper {
	return NewWithResolutions(s, make(Resolutions))
}

// NewWithResolutions creates a RowMapper that reads and fills a caller-owned arena.
// The arena must only be shared between rows with the same header vocabulary.
func NewWithResolutions(s *schema.Schema, res Resolutions) *RowMapper {
	if res == nil {
		res = make(Resolutions)
	}
	return &RowMapper{schema: s, resolutions: res}
}

// Schema returns the schema this mapper is bound to.
func (m *RowMapper) Schema() *schema.Schema {
	return m.schema
}

// Resolve returns the cached resolution for h, matching it on first use.
func (m *RowMapper) Resolve(h string) header.Resolution {
	if r, ok := m.resolutions[h]; ok {
		return r
	}
	r := header.Resolve(h, m.schema)
	m.resolutions[h] = r
	return r
}

// FormatRow maps row onto the schema keys.
//
// Headers are visited in sorted order, so when two headers resolve to the same key the
// later one wins deterministically. Unmatched headers are dropped; the schema's passthrough
// identifier is copied unchanged. In strict mode a row whose headers all fail to match
// returns an *UnmatchedRowError.
func (m *RowMapper) FormatRow(row schema.RawRow, strict bool) (schema.Record, error) {
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	rec := make(schema.Record, len(row))
	var unmatched []string
	matched := 0
	passthrough := m.schema.PassthroughKey()

	for _, h := range headers {
		if h == passthrough {
			rec[passthrough] = row[h]
			continue
		}
		r := m.Resolve(h)
		if !r.Matched() {
			unmatched = append(unmatched, h)
			continue
		}
		rec[r.Key] = row[h]
		matched++
	}

	if strict && matched == 0 && len(unmatched) > 0 {
		return nil, &UnmatchedRowError{Headers: unmatched}
	}
	return rec, nil
}

// Resolutions returns a copy of the arena.
func (m *RowMapper) Resolutions() Resolutions {
	out := make(Resolutions, len(m.resolutions))
	for h, r := range m.resolutions {
		out[h] = r
	}
	return out
}

// Unmatched returns the headers seen so far that resolved to no key, sorted.
func (m *RowMapper) Unmatched() []string {
	var out []string
	for h, r := range m.resolutions {
		if !r.Matched() {
			out = append(out, h)
		}
	}
	sort.Strings(out)
	return out
}

// Reset empties the arena so the mapper can be reused for a new header vocabulary.
func (m *RowMapper) Reset() {
	m.resolutions = make(Resolutions)
}
