package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskIDGenerator_ProducesVersion4UUIDs(t *testing.T) {
	g := NewTaskIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, uuid.RFC4122, parsed.Variant())
}

func TestTaskIDGenerator_NoCollisions(t *testing.T) {
	g := NewTaskIDGenerator()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate task id %s after %d generations", id, i)
		seen[id] = struct{}{}
	}
}
