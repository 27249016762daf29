// Package validate checks canonical records against their schema.
//
// Every required key must be present with a non-empty value. A value is empty when it is
// nil, the empty string or only whitespace. Violations are accumulated over the whole batch
// and returned together in a single *ValidationError, so a user fixing a spreadsheet sees
// every problem at once rather than one per attempt.
//
// Primary key uniqueness within a batch is not checked here.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"roster-manager/core/schema"
	"roster-manager/core/utils"
)

// ErrInvalidRecords is wrapped by ValidationError.
var ErrInvalidRecords = errors.New("invalid records")

// Violation describes a single problem with one record.
type Violation struct {
	// Index is the zero-based position of the record in the batch.
	Index int `json:"index"`
	// Identifier is the record's primary key (or passthrough id) when it has one.
	Identifier string `json:"identifier,omitempty"`
	// Field is the offending key, empty for whole-row problems.
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "row %d", v.Index+1)
	if v.Identifier != "" {
		fmt.Fprintf(&b, " (%s)", v.Identifier)
	}
	if v.Field != "" {
		fmt.Fprintf(&b, " %s", v.Field)
	}
	b.WriteString(": ")
	b.WriteString(v.Message)
	return b.String()
}

// ValidationError carries every violation found in a batch.
type ValidationError struct {
	BaseName   string      `json:"baseName"`
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s %s: %s", ErrInvalidRecords, e.BaseName, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecords
}

// Add appends a violation.
func (e *ValidationError) Add(v Violation) {
	e.Violations = append(e.Violations, v)
}

// Rows returns the number of distinct records with at least one violation.
func (e *ValidationError) Rows() int {
	rows := make(map[int]struct{}, len(e.Violations))
	for _, v := range e.Violations {
		rows[v.Index] = struct{}{}
	}
	return len(rows)
}

// Err returns e when it holds violations, nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// Records validates a batch of records. It returns nil or a *ValidationError.
func Records(records []schema.Record, s *schema.Schema) error {
	verr := &ValidationError{BaseName: s.BaseName()}
	for i, rec := range records {
		for _, v := range Record(rec, s) {
			v.Index = i
			verr.Add(v)
		}
	}
	return verr.Err()
}

// Record validates a single record. Returned violations carry a zero Index.
func Record(rec schema.Record, s *schema.Schema) []Violation {
	var out []Violation
	id := Identifier(rec, s)
	for _, key := range s.RequiredKeys() {
		val, ok := rec[key]
		switch {
		case !ok:
			out = append(out, Violation{Identifier: id, Field: key, Message: "required field is missing"})
		case IsEmpty(val):
			out = append(out, Violation{Identifier: id, Field: key, Message: "required field is empty"})
		}
	}
	return out
}

// Identifier returns a human readable identifier for rec: its primary key when set,
// otherwise its passthrough id, otherwise "".
func Identifier(rec schema.Record, s *schema.Schema) string {
	if v, ok := rec[s.PrimaryKey()]; ok && !IsEmpty(v) {
		return utils.ToString(v)
	}
	if v, ok := rec[s.PassthroughKey()]; ok && !IsEmpty(v) {
		return utils.ToString(v)
	}
	return ""
}

// IsEmpty reports whether v counts as an empty value.
func IsEmpty(v any) bool {
	return utils.IsBlank(v)
}
