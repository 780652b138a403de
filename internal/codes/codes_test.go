package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	g, err := NewGenerator("test-salt")
	require.NoError(t, err)

	code, err := g.Generate(12)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(code), 8)
}

func TestGenerate_DistinctCodes(t *testing.T) {
	g, err := NewGenerator("test-salt")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for range 50 {
		code, err := g.Generate(12)
		require.NoError(t, err)
		assert.False(t, seen[code], "code %q generated twice", code)
		seen[code] = true
	}
}
