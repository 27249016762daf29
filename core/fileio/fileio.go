package fileio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roster-manager/core/export"
	"roster-manager/core/importer"
	"roster-manager/core/schema"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for file types without a codec.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

const utf8BOM = "\ufeff"

// ContentType returns the MIME type for ft.
func ContentType(ft importer.FileType) string {
	switch ft {
	case importer.FileTypeJSON:
		return "application/json"
	case importer.FileTypeCSV:
		return "text/csv"
	case importer.FileTypeXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the default file name for an export of baseName.
func FileName(baseName string, ft importer.FileType) string {
	return baseName + "." + string(ft)
}

// DecodeFile reads path, choosing the codec from its extension.
func DecodeFile(path string) (importer.Source, error) {
	ft, err := importer.ParseFileType(filepath.Ext(path))
	if err != nil {
		return importer.Source{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return importer.Source{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Decode(f, ft)
	if err != nil {
		return importer.Source{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return importer.Source{Data: rows, FileType: ft}, nil
}

// Decode reads raw rows from r.
func Decode(r io.Reader, ft importer.FileType) ([]schema.RawRow, error) {
	switch ft {
	case importer.FileTypeJSON:
		return decodeJSON(r)
	case importer.FileTypeCSV:
		return decodeCSV(r)
	case importer.FileTypeXLSX:
		return decodeXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ft)
	}
}

// Encode writes records to w.
func Encode(w io.Writer, ft importer.FileType, s *schema.Schema, records []schema.Record) error {
	switch ft {
	case importer.FileTypeJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(export.Objects(s, records))
	case importer.FileTypeCSV:
		header, rows := export.Rows(s, records)
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		return cw.Error()
	case importer.FileTypeXLSX:
		return encodeXLSX(w, s, records)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ft)
	}
}

// EncodeBytes is Encode into a byte slice.
func EncodeBytes(ft importer.FileType, s *schema.Schema, records []schema.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, ft, s, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeJSON(r io.Reader) ([]schema.RawRow, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []schema.RawRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("invalid JSON rows: %w", err)
	}
	if rows == nil {
		rows = []schema.RawRow{}
	}
	return rows, nil
}

func decodeCSV(r io.Reader) ([]schema.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	return tableToRows(records), nil
}

func decodeXLSX(r io.Reader) ([]schema.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return []schema.RawRow{}, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return tableToRows(records), nil
}

// tableToRows turns a header row plus data rows into raw rows.
func tableToRows(records [][]string) []schema.RawRow {
	rows := []schema.RawRow{}
	if len(records) == 0 {
		return rows
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	for _, rec := range records[1:] {
		if isEmptyRow(rec) {
			continue
		}
		row := make(schema.RawRow, len(header))
		for i, h := range header {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func encodeXLSX(w io.Writer, s *schema.Schema, records []schema.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := s.BaseName()
	if len(sheet) > maxSheetName {
		sheet = sheet[:maxSheetName]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	header, rows := export.Rows(s, records)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
