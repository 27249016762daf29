package models

import (
	"roster-manager/core/reconcile"
	"roster-manager/core/schema"
	"roster-manager/core/validate"
)

// SchemaInfo describes a registered schema.
type SchemaInfo struct {
	BaseName     string            `json:"baseName"`
	Keys         []string          `json:"keys"`
	KeyMap       map[string]string `json:"keyMap"`
	RequiredKeys []string          `json:"requiredKeys"`
	PrimaryKey   string            `json:"primaryKey"`
	DateColumns  []string          `json:"dateColumns"`
}

// NewSchemaInfo builds the public description of s.
func NewSchemaInfo(s *schema.Schema) SchemaInfo {
	def := s.Definition()
	info := SchemaInfo{
		BaseName:     def.BaseName,
		Keys:         def.Keys,
		KeyMap:       def.KeyMap,
		RequiredKeys: def.RequiredKeys,
		PrimaryKey:   def.PrimaryKey,
		DateColumns:  def.DateColumns,
	}
	if info.KeyMap == nil {
		info.KeyMap = map[string]string{}
	}
	if info.RequiredKeys == nil {
		info.RequiredKeys = []string{}
	}
	if info.DateColumns == nil {
		info.DateColumns = []string{}
	}
	return info
}

// ImportRequest is the body of the import and diff endpoints.
type ImportRequest struct {
	// Data holds the rows of the file, keyed by the file's own headers.
	Data []schema.RawRow `json:"data"`
	// FileType is the format the rows were read from (json, csv, xlsx).
	FileType string `json:"fileType"`
	// Lenient keeps rows that match no schema column instead of rejecting them.
	Lenient bool `json:"lenient"`
	// Removals overrides the configured removal policy (ignore, report).
	Removals string `json:"removals"`
}

// ApplyRequest is the body of the apply endpoint.
type ApplyRequest struct {
	ImportRequest
	DryRun    bool `json:"dryRun"`
	Confirmed bool `json:"confirmed"`
	// Purge deletes stored records missing from the import. Implies removal reporting.
	Purge bool `json:"purge"`
}

// ObjectImportRequest is the body of the import-object endpoint.
type ObjectImportRequest struct {
	Key     string `json:"key"`
	Lenient bool   `json:"lenient"`
}

// ImportResponse holds the canonical records of an import.
type ImportResponse struct {
	BaseName string          `json:"baseName"`
	Count    int             `json:"count"`
	Records  []schema.Record `json:"records"`
}

// ApplyResponse is the outcome of an apply request.
type ApplyResponse struct {
	Plan     *reconcile.Plan `json:"plan"`
	Executed int             `json:"executed"`
	DryRun   bool            `json:"dryRun"`
}

// RecordsResponse lists stored records.
type RecordsResponse struct {
	BaseName string          `json:"baseName"`
	Count    int64           `json:"count"`
	Records  []schema.Record `json:"records"`
}

// ExportResponse describes an export written to object storage.
type ExportResponse struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Size   int64  `json:"size"`
}

// ValidationErrorResponse is returned with status 422.
type ValidationErrorResponse struct {
	Error      string               `json:"error"`
	Violations []validate.Violation `json:"violations"`
}
