package mapper_test

import (
	"errors"
	"testing"

	"roster-manager/core/header"
	"roster-manager/core/mapper"
	"roster-manager/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instructorSchema() *schema.Schema {
	return schema.MustNew(schema.Definition{
		BaseName: "instructors",
		Keys:     []string{"first_name", "last_name", "utorid", "email"},
		KeyMap: map[string]string{
			"First Name":  "first_name",
			"Given Name":  "first_name",
			"First":       "first_name",
			"Last Name":   "last_name",
			"Surname":     "last_name",
			"Family Name": "last_name",
			"Last":        "last_name",
		},
		RequiredKeys: []string{"utorid"},
		PrimaryKey:   "utorid",
	})
}

func TestFormatRow_FuzzyMatching(t *testing.T) {
	target := schema.Record{"first_name": "Joe", "last_name": "Smith"}

	tests := []struct {
		name string
		row  schema.RawRow
		want bool
	}{
		{"schema keys", schema.RawRow{"first_name": "Joe", "last_name": "Smith"}, true},
		{"key map aliases", schema.RawRow{"First Name": "Joe", "Last Name": "Smith"}, true},
		{"spacing and case", schema.RawRow{"First  Name": "Joe", "LastName": "Smith"}, true},
		{"typos", schema.RawRow{"firstname": "Joe", "LAST NAMEE": "Smith"}, true},
		{"too dissimilar", schema.RawRow{"name": "Joe", "LAST NAME": "Smith"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A fresh mapper per vocabulary; the arena is not shared between sources.
			m := mapper.New(instructorSchema())
			got, err := m.FormatRow(tt.row, false)
			require.NoError(t, err)
			if tt.want {
				assert.Equal(t, target, got)
			} else {
				assert.NotEqual(t, target, got)
			}
		})
	}
}

func TestFormatRow_AliasDropsRawHeader(t *testing.T) {
	m := mapper.New(instructorSchema())
	got, err := m.FormatRow(schema.RawRow{"First Name": "Joe"}, false)
	require.NoError(t, err)

	assert.Equal(t, "Joe", got["first_name"])
	assert.NotContains(t, got, "First Name")
}

func TestFormatRow_PassthroughAndUnmatched(t *testing.T) {
	m := mapper.New(instructorSchema())
	got, err := m.FormatRow(schema.RawRow{"id": 7, "utorid": "mario", "favourite colour": "red"}, false)
	require.NoError(t, err)

	assert.Equal(t, schema.Record{"id": 7, "utorid": "mario"}, got)
	assert.Equal(t, []string{"favourite colour"}, m.Unmatched())
}

func TestFormatRow_CollisionIsDeterministic(t *testing.T) {
	row := schema.RawRow{"Surname": "Peach", "Last Name": "Toadstool"}

	for i := 0; i < 20; i++ {
		m := mapper.New(instructorSchema())
		got, err := m.FormatRow(row, false)
		require.NoError(t, err)
		// "Surname" sorts after "Last Name" and overwrites it.
		assert.Equal(t, "Peach", got["last_name"])
	}
}

func TestFormatRow_Strict(t *testing.T) {
	m := mapper.New(instructorSchema())

	_, err := m.FormatRow(schema.RawRow{"colour": "red", "id": 1}, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapper.ErrUnmatchedRow))

	var unmatched *mapper.UnmatchedRowError
	require.ErrorAs(t, err, &unmatched)
	assert.Equal(t, []string{"colour"}, unmatched.Headers)

	got, err := m.FormatRow(schema.RawRow{"colour": "red"}, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.FormatRow(schema.RawRow{"colour": "red", "utorid": "luigi"}, true)
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"utorid": "luigi"}, got)

	got, err = m.FormatRow(schema.RawRow{}, true)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatRow_CacheMatchesFreshMapping(t *testing.T) {
	rows := []schema.RawRow{
		{"Given Name": "Mario", "Family Name": "Mario", "UTORid": "itasmeM", "E-mail": "m@mk.com"},
		{"Given Name": "Luigi", "Family Name": "Mario", "UTORid": "ohIMissedL", "E-mail": "l@mk.com"},
		{"Given Name": "Peach", "Family Name": "Toadstool", "UTORid": "IBakedACake", "E-mail": "p@mk.com"},
	}

	shared := mapper.New(instructorSchema())
	for _, row := range rows {
		cached, err := shared.FormatRow(row, true)
		require.NoError(t, err)

		fresh, err := mapper.New(instructorSchema()).FormatRow(row, true)
		require.NoError(t, err)

		assert.Equal(t, fresh, cached)
	}

	// The arena grows with distinct headers, not with rows.
	assert.Len(t, shared.Resolutions(), 4)
}

func TestNewWithResolutions_UsesCallerArena(t *testing.T) {
	s := instructorSchema()
	arena := mapper.Resolutions{
		// A stale entry from another vocabulary: "Name" used to mean the surname.
		"Name": header.Resolution{Key: "last_name", Rule: header.RuleAlias},
	}

	m := mapper.NewWithResolutions(s, arena)
	got, err := m.FormatRow(schema.RawRow{"Name": "Peach"}, false)
	require.NoError(t, err)
	assert.Equal(t, schema.Record{"last_name": "Peach"}, got)

	m.Reset()
	got, err = m.FormatRow(schema.RawRow{"Name": "Peach"}, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, cached := arena["Name"]
	assert.True(t, cached, "Reset must not clear the caller's map in place")
}
