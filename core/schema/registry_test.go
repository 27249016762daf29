package schema_test

import (
	"testing"

	"roster-manager/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	instructors := schema.MustNew(instructorDefinition())
	positions := schema.MustNew(schema.Definition{
		BaseName:   "positions",
		Keys:       []string{"position_code"},
		PrimaryKey: "position_code",
	})

	reg, err := schema.NewRegistry(positions, instructors)
	require.NoError(t, err)

	got, ok := reg.Get("instructors")
	assert.True(t, ok)
	assert.Same(t, instructors, got)

	_, ok = reg.Get("unknown")
	assert.False(t, ok)

	assert.Equal(t, []string{"instructors", "positions"}, reg.BaseNames())

	err = reg.Register(schema.MustNew(instructorDefinition()))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}
