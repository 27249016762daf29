package schema

import (
	"fmt"
	"sort"
)

// DefaultPassthroughKey is the storage identifier preserved on records even though it is
// not part of any schema.
const DefaultPassthroughKey = "id"

// RawRow is a single row as produced by a file parser: header -> scalar value.
type RawRow map[string]any

// Record is a canonical record. Its keys are restricted to the schema keys plus the
// optional passthrough identifier.
type Record map[string]any

// Definition is the user-facing description of a schema.
type Definition struct {
	// BaseName identifies the record type (e.g. "instructors").
	BaseName string
	// Keys is the ordered list of canonical field names.
	Keys []string
	// KeyMap maps alias header strings to canonical field names.
	KeyMap map[string]string
	// RequiredKeys must be present and non-empty on every record. The primary key is
	// always required, whether or not it is listed.
	RequiredKeys []string
	// PrimaryKey identifies a record when diffing.
	PrimaryKey string
	// DateColumns hold date-typed values.
	DateColumns []string
	// PassthroughKey is preserved when present on input. Defaults to "id".
	PassthroughKey string
}

// Schema is an immutable, validated Definition.
type Schema struct {
	baseName       string
	keys           []string
	keySet         map[string]struct{}
	keyMap         map[string]string
	aliases        []string
	requiredKeys   []string
	primaryKey     string
	dateColumns    map[string]struct{}
	passthroughKey string
}

// New validates def and builds a Schema.
// All problems found are reported together in a single ConfigurationError.
func New(def Definition) (*Schema, error) {
	var problems []string

	if def.BaseName == "" {
		problems = append(problems, "base name is empty")
	}
	if len(def.Keys) == 0 {
		problems = append(problems, "no keys defined")
	}

	keySet := make(map[string]struct{}, len(def.Keys))
	for _, k := range def.Keys {
		if k == "" {
			problems = append(problems, "empty key name")
			continue
		}
		if _, dup := keySet[k]; dup {
			problems = append(problems, fmt.Sprintf("key %q defined twice", k))
			continue
		}
		keySet[k] = struct{}{}
	}

	if def.PrimaryKey == "" {
		problems = append(problems, "primary key is empty")
	} else if _, ok := keySet[def.PrimaryKey]; !ok {
		problems = append(problems, fmt.Sprintf("primary key %q is not a key", def.PrimaryKey))
	}

	for _, k := range def.RequiredKeys {
		if _, ok := keySet[k]; !ok {
			problems = append(problems, fmt.Sprintf("required key %q is not a key", k))
		}
	}

	dateColumns := make(map[string]struct{}, len(def.DateColumns))
	for _, k := range def.DateColumns {
		if _, ok := keySet[k]; !ok {
			problems = append(problems, fmt.Sprintf("date column %q is not a key", k))
			continue
		}
		dateColumns[k] = struct{}{}
	}

	keyMap := make(map[string]string, len(def.KeyMap))
	aliases := make([]string, 0, len(def.KeyMap))
	for alias, target := range def.KeyMap {
		if _, ok := keySet[target]; !ok {
			problems = append(problems, fmt.Sprintf("alias %q maps to unknown key %q", alias, target))
			continue
		}
		keyMap[alias] = target
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	passthrough := def.PassthroughKey
	if passthrough == "" {
		passthrough = DefaultPassthroughKey
	}
	if _, clash := keySet[passthrough]; clash {
		problems = append(problems, fmt.Sprintf("passthrough key %q collides with a schema key", passthrough))
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, &ConfigurationError{BaseName: def.BaseName, Problems: problems}
	}

	return &Schema{
		baseName:       def.BaseName,
		keys:           append([]string(nil), def.Keys...),
		keySet:         keySet,
		keyMap:         keyMap,
		aliases:        aliases,
		requiredKeys:   withPrimaryKey(def.RequiredKeys, def.PrimaryKey),
		primaryKey:     def.PrimaryKey,
		dateColumns:    dateColumns,
		passthroughKey: passthrough,
	}, nil
}

// withPrimaryKey copies required and appends pk when missing. Records are matched by
// primary key, so a record without one cannot be reconciled.
func withPrimaryKey(required []string, pk string) []string {
	out := append([]string(nil), required...)
	for _, k := range out {
		if k == pk {
			return out
		}
	}
	return append(out, pk)
}

// MustNew is like New but panics on error. Use it for built-in schemas at startup.
func MustNew(def Definition) *Schema {
	s, err := New(def)
	if err != nil {
		panic(err)
	}
	return s
}

// BaseName returns the record type name.
func (s *Schema) BaseName() string { return s.baseName }

// Keys returns a copy of the canonical keys in definition order.
func (s *Schema) Keys() []string { return append([]string(nil), s.keys...) }

// HasKey reports whether k is a canonical key.
func (s *Schema) HasKey(k string) bool {
	_, ok := s.keySet[k]
	return ok
}

// Alias returns the canonical key an alias maps to.
func (s *Schema) Alias(alias string) (string, bool) {
	k, ok := s.keyMap[alias]
	return k, ok
}

// Aliases returns the alias strings sorted lexicographically.
func (s *Schema) Aliases() []string { return append([]string(nil), s.aliases...) }

// RequiredKeys returns a copy of the required keys.
func (s *Schema) RequiredKeys() []string { return append([]string(nil), s.requiredKeys...) }

// PrimaryKey returns the key used to match records when diffing.
func (s *Schema) PrimaryKey() string { return s.primaryKey }

// IsDateColumn reports whether k holds date values.
func (s *Schema) IsDateColumn(k string) bool {
	_, ok := s.dateColumns[k]
	return ok
}

// DateColumns returns the date columns in key order.
func (s *Schema) DateColumns() []string {
	var cols []string
	for _, k := range s.keys {
		if s.IsDateColumn(k) {
			cols = append(cols, k)
		}
	}
	return cols
}

// PassthroughKey returns the identifier preserved on records outside the schema keys.
func (s *Schema) PassthroughKey() string { return s.passthroughKey }

// Definition returns a copy of the definition this schema was built from.
func (s *Schema) Definition() Definition {
	keyMap := make(map[string]string, len(s.keyMap))
	for a, k := range s.keyMap {
		keyMap[a] = k
	}
	return Definition{
		BaseName:       s.baseName,
		Keys:           s.Keys(),
		KeyMap:         keyMap,
		RequiredKeys:   s.RequiredKeys(),
		PrimaryKey:     s.primaryKey,
		DateColumns:    s.DateColumns(),
		PassthroughKey: s.passthroughKey,
	}
}
