package importer

import (
	"errors"
	"fmt"
	"strings"

	"roster-manager/core/mapper"
	"roster-manager/core/schema"
	"roster-manager/core/validate"
)

// FileType records where a batch came from. It does not change how rows are mapped.
type FileType string

const (
	FileTypeJSON FileType = "json"
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
)

// ErrUnknownFileType is returned by ParseFileType.
var ErrUnknownFileType = errors.New("unknown file type")

// ParseFileType parses a file type name or extension (".csv", "XLSX", ...).
func ParseFileType(s string) (FileType, error) {
	ft := FileType(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch ft {
	case FileTypeJSON, FileTypeCSV, FileTypeXLSX:
		return ft, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFileType, s)
}

// Source is a decoded file: rows keyed by the file's own headers.
type Source struct {
	Data     []schema.RawRow `json:"data"`
	FileType FileType        `json:"fileType"`
}

// Options controls a single Normalize call.
type Options struct {
	// Strict rejects rows in which no header matches the schema.
	Strict bool
	// TwoDigitYearPivot overrides DefaultTwoDigitYearPivot when positive.
	TwoDigitYearPivot int
}

// Normalize maps, date-normalizes and validates src against s.
// It returns either every record or a *validate.ValidationError, never a partial batch.
func Normalize(src Source, s *schema.Schema, opts Options) ([]schema.Record, error) {
	m := mapper.New(s)
	dates := newDateParser(opts.TwoDigitYearPivot)
	verr := &validate.ValidationError{BaseName: s.BaseName()}

	records := make([]schema.Record, 0, len(src.Data))
	for i, row := range src.Data {
		rec, err := m.FormatRow(row, opts.Strict)
		if err != nil {
			verr.Add(validate.Violation{Index: i, Message: err.Error()})
			continue
		}

		for _, v := range normalizeDates(rec, s, dates) {
			v.Index = i
			verr.Add(v)
		}
		for _, v := range validate.Record(rec, s) {
			v.Index = i
			verr.Add(v)
		}
		records = append(records, rec)
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// normalizeDates rewrites the date columns of rec in place.
func normalizeDates(rec schema.Record, s *schema.Schema, p *dateParser) []validate.Violation {
	var out []validate.Violation
	for _, col := range s.DateColumns() {
		val, ok := rec[col]
		if !ok || validate.IsEmpty(val) {
			continue
		}
		d, err := p.Parse(val)
		if err != nil {
			out = append(out, validate.Violation{
				Identifier: validate.Identifier(rec, s),
				Field:      col,
				Message:    err.Error(),
			})
			continue
		}
		rec[col] = d
	}
	return out
}
