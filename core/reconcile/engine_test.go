package reconcile

import (
	"errors"
	"testing"

	"roster-manager/core/importer"
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

func originalInstructors() []schema.Record {
	return []schema.Record{
		{"id": 2, "first_name": "Princess", "last_name": "Peach", "email": "sorry@inaothercastle.com", "utorid": "IBakedACakeForYou"},
		{"id": 3, "first_name": "Mario", "last_name": "Mario", "email": "m@mushroomkingdom.com", "utorid": "itasmeM"},
		{"id": 4, "first_name": "Luigi", "last_name": "Mario", "email": "l@mushromkingdom.com", "utorid": "ohIMissedL"},
	}
}

func toRaw(records []schema.Record) []schema.RawRow {
	out := make([]schema.RawRow, len(records))
	for i, r := range records {
		out[i] = schema.RawRow(r)
	}
	return out
}

// TestDiffImport_ModifiedAndDuplicates walks an import through normalization and diffing.
func TestDiffImport_ModifiedAndDuplicates(t *testing.T) {
	s := instructorSchema()
	reg, err := schema.NewRegistry(s)
	require.NoError(t, err)

	original := originalInstructors()
	stored, err := importer.Normalize(importer.Source{Data: toRaw(original), FileType: importer.FileTypeJSON}, s, importer.Options{Strict: true})
	require.NoError(t, err)

	incoming := originalInstructors()
	incoming[0]["last_name"] = "Daisy"

	report, err := DiffImport(reg, "instructors", incoming, map[string][]schema.Record{"instructors": stored}, Options{})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	modified := report.Results[0]
	assert.Equal(t, StatusModified, modified.Status)
	assert.Equal(t, map[string]string{"last_name": `"Peach" → "Daisy"`}, modified.Changes)
	assert.Equal(t, incoming[0], modified.Obj)

	assert.Equal(t, StatusDuplicate, report.Results[1].Status)
	assert.Empty(t, report.Results[1].Changes)
	assert.Equal(t, original[1], report.Results[1].Obj)

	assert.Equal(t, StatusDuplicate, report.Results[2].Status)
	assert.Equal(t, original[2], report.Results[2].Obj)

	assert.Equal(t, Summary{Total: 3, Duplicate: 2, Modified: 1}, report.Summary)
	assert.Empty(t, report.DuplicateExistingKeys)
	assert.Empty(t, report.Removed)
}

func TestDiffImport_UnknownSchema(t *testing.T) {
	reg, err := schema.NewRegistry(instructorSchema())
	require.NoError(t, err)

	_, err = DiffImport(reg, "applicants", nil, nil, Options{})
	assert.True(t, errors.Is(err, ErrUnknownSchema))
}

func TestDiff_SelfDiffIsAllDuplicates(t *testing.T) {
	records := originalInstructors()
	report := Diff(instructorSchema(), records, records, Options{Removals: RemovalsReport})

	require.Len(t, report.Results, len(records))
	for i, r := range report.Results {
		assert.Equal(t, StatusDuplicate, r.Status)
		assert.Empty(t, r.Changes)
		assert.Equal(t, records[i], r.Obj)
	}
	assert.Empty(t, report.Removed)
	assert.False(t, report.Summary.HasChanges())
}

func TestDiff_NewRecords(t *testing.T) {
	incoming := []schema.Record{
		{"first_name": "Bowser", "utorid": "koopa"},
		{"first_name": "Mario", "last_name": "Mario", "email": "m@mushroomkingdom.com", "utorid": "itasmeM"},
	}

	report := Diff(instructorSchema(), incoming, originalInstructors(), Options{})
	require.Len(t, report.Results, 2)

	assert.Equal(t, StatusNew, report.Results[0].Status)
	assert.Equal(t, "koopa", report.Results[0].Key)
	assert.Equal(t, incoming[0], report.Results[0].Obj)
	assert.NotNil(t, report.Results[0].Changes)
	assert.Empty(t, report.Results[0].Changes)

	assert.Equal(t, StatusDuplicate, report.Results[1].Status)
	assert.Equal(t, Summary{Total: 2, New: 1, Duplicate: 1}, report.Summary)
}

func TestDiff_BlankPrimaryKeys(t *testing.T) {
	existing := []schema.Record{
		{"utorid": "", "first_name": "Stored Ghost"},
		{"utorid": "koopa", "first_name": "Bowser"},
	}
	incoming := []schema.Record{
		{"first_name": "Boo"},
		{"utorid": "koopa", "first_name": "Bowser"},
		{"utorid": "  ", "first_name": "King Boo"},
	}

	report := Diff(instructorSchema(), incoming, existing, Options{Removals: RemovalsReport})

	assert.Equal(t, []int{0, 2}, report.MissingKeys)
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusDuplicate, report.Results[0].Status)
	assert.Empty(t, report.Removed)
	assert.Empty(t, report.DuplicateExistingKeys)
	assert.Equal(t, Summary{Total: 3, Duplicate: 1}, report.Summary)
}

func TestDiff_OrderingModifiedFirstStable(t *testing.T) {
	existing := []schema.Record{
		{"utorid": "a", "email": "a@x"},
		{"utorid": "b", "email": "b@x"},
		{"utorid": "c", "email": "c@x"},
	}
	incoming := []schema.Record{
		{"utorid": "a", "email": "a@x"},
		{"utorid": "new1"},
		{"utorid": "b", "email": "b@y"},
		{"utorid": "c", "email": "c@y"},
	}

	report := Diff(instructorSchema(), incoming, existing, Options{})

	var keys []string
	for _, r := range report.Results {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{"b", "c", "a", "new1"}, keys)
}

func TestCompareRecords(t *testing.T) {
	s := instructorSchema()

	tests := []struct {
		name string
		old  schema.Record
		new  schema.Record
		want map[string]string
	}{
		{
			name: "missing equals empty",
			old:  schema.Record{"utorid": "x", "email": ""},
			new:  schema.Record{"utorid": "x"},
			want: map[string]string{},
		},
		{
			name: "nil equals empty",
			old:  schema.Record{"utorid": "x", "email": nil},
			new:  schema.Record{"utorid": "x", "email": ""},
			want: map[string]string{},
		},
		{
			name: "added field",
			old:  schema.Record{"utorid": "x"},
			new:  schema.Record{"utorid": "x", "email": "x@y.com"},
			want: map[string]string{"email": `"" → "x@y.com"`},
		},
		{
			name: "removed field",
			old:  schema.Record{"utorid": "x", "first_name": "Toad"},
			new:  schema.Record{"utorid": "x"},
			want: map[string]string{"first_name": `"Toad" → ""`},
		},
		{
			name: "stringified numbers",
			old:  schema.Record{"utorid": 5},
			new:  schema.Record{"utorid": "5"},
			want: map[string]string{},
		},
		{
			name: "non-schema keys ignored",
			old:  schema.Record{"utorid": "x", "id": 1},
			new:  schema.Record{"utorid": "x", "id": 2, "colour": "red"},
			want: map[string]string{},
		},
		{
			name: "html characters are not escaped",
			old:  schema.Record{"utorid": "x", "email": "a<b>"},
			new:  schema.Record{"utorid": "x", "email": "a&b"},
			want: map[string]string{"email": `"a<b>" → "a&b"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareRecords(s, tt.old, tt.new))
		})
	}
}

func TestDiff_DuplicateExistingKeys(t *testing.T) {
	existing := []schema.Record{
		{"utorid": "twin", "email": "first@x"},
		{"utorid": "solo"},
		{"utorid": "twin", "email": "second@x"},
		{"utorid": "twin", "email": "third@x"},
	}
	incoming := []schema.Record{{"utorid": "twin", "email": "third@x"}}

	report := Diff(instructorSchema(), incoming, existing, Options{})
	assert.Equal(t, []string{"twin"}, report.DuplicateExistingKeys)
	require.Len(t, report.Results, 1)
	assert.Equal(t, StatusDuplicate, report.Results[0].Status)
	assert.Equal(t, existing[3], report.Results[0].Obj)
}

func TestDiff_Removals(t *testing.T) {
	existing := originalInstructors()
	incoming := []schema.Record{existing[1]}

	ignored := Diff(instructorSchema(), incoming, existing, Options{})
	assert.Empty(t, ignored.Removed)
	assert.Equal(t, 0, ignored.Summary.Removed)

	reported := Diff(instructorSchema(), incoming, existing, Options{Removals: RemovalsReport})
	require.Len(t, reported.Removed, 2)
	assert.Equal(t, StatusRemoved, reported.Removed[0].Status)
	assert.Equal(t, "IBakedACakeForYou", reported.Removed[0].Key)
	assert.Equal(t, existing[0], reported.Removed[0].Obj)
	assert.Equal(t, "ohIMissedL", reported.Removed[1].Key)
	assert.Equal(t, 2, reported.Summary.Removed)

	require.Len(t, reported.Results, 1)
	assert.Equal(t, StatusDuplicate, reported.Results[0].Status)
}

func TestParseRemovalPolicy(t *testing.T) {
	p, err := ParseRemovalPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RemovalsIgnore, p)

	p, err = ParseRemovalPolicy("report")
	require.NoError(t, err)
	assert.Equal(t, RemovalsReport, p)

	_, err = ParseRemovalPolicy("delete")
	assert.Error(t, err)
}
