// Package schema defines the canonical record schemas that spreadsheet imports are
// normalized to.
//
// A Schema is constructed once per record type (instructors, applicants, positions, ...)
// and shared read-only by every other component: the header matcher, the row mapper,
// the validator, the diff engine and the exporter.
//
// # Construction
//
// Schemas are validated when they are built. A malformed definition (primary key not in
// the key list, an alias pointing at an unknown key, ...) is a programming error and is
// reported as a ConfigurationError:
//
//	s, err := schema.New(schema.Definition{
//	    BaseName:     "instructors",
//	    Keys:         []string{"first_name", "last_name", "utorid", "email"},
//	    KeyMap:       map[string]string{"First Name": "first_name"},
//	    RequiredKeys: []string{"utorid"},
//	    PrimaryKey:   "utorid",
//	})
//
// # Registry
//
// A Registry maps a schema's BaseName to the schema itself, so import, diff and export
// entry points can be dispatched by record type name.
package schema
