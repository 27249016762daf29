// Package utils provides small helpers shared by the roster-manager packages.
//
// ToString defines how a spreadsheet cell value is compared and exported: the diff engine
// compares fields by their ToString form and the exporter writes it to CSV and XLSX cells.
// IsBlank decides whether a required cell counts as filled in.
package utils
