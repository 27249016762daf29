package schemas_test

import (
	"testing"

	"roster-manager/core/header"
	"roster-manager/feature/records/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	reg := schemas.NewRegistry()
	assert.Equal(t, []string{"applicants", "instructors", "positions"}, reg.BaseNames())

	s, ok := reg.Get("positions")
	require.True(t, ok)
	assert.True(t, s.IsDateColumn("start_date"))
	assert.True(t, s.IsDateColumn("end_date"))
	assert.False(t, s.IsDateColumn("position_code"))
}

func TestBuiltinHeaders(t *testing.T) {
	tests := []struct {
		baseName string
		header   string
		key      string
	}{
		{"instructors", "Given Name", "first_name"},
		{"instructors", "UTORid", "utorid"},
		{"instructors", "E-mail", "email"},
		{"applicants", "Student ID", "student_number"},
		{"applicants", "Year in Program", "yip"},
		{"positions", "Course Code", "position_code"},
		{"positions", "Start Date", "start_date"},
		{"positions", "Hours per Assignment", "hours_per_assignment"},
	}

	reg := schemas.NewRegistry()
	for _, tt := range tests {
		t.Run(tt.baseName+"/"+tt.header, func(t *testing.T) {
			s, ok := reg.Get(tt.baseName)
			require.True(t, ok)

			key, ok := header.Match(tt.header, s)
			assert.True(t, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}
