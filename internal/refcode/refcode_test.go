package refcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesAreStableAndDistinct(t *testing.T) {
	g, err := New("test-salt")
	require.NoError(t, err)

	first, err := g.FromID(42)
	require.NoError(t, err)
	again, err := g.FromID(42)
	require.NoError(t, err)
	other, err := g.FromID(43)
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
	assert.GreaterOrEqual(t, len(first), 8)
	for _, r := range first {
		assert.True(t, strings.ContainsRune(alphabet, r), "code %q uses a character outside the alphabet", first)
	}
}

func TestSaltChangesCodes(t *testing.T) {
	a, err := New("salt-a")
	require.NoError(t, err)
	b, err := New("salt-b")
	require.NoError(t, err)

	codeA, err := a.FromID(7)
	require.NoError(t, err)
	codeB, err := b.FromID(7)
	require.NoError(t, err)

	assert.NotEqual(t, codeA, codeB)
}
