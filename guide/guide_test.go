package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	def, err := Get("")
	require.NoError(t, err)
	assert.Contains(t, def, "# roman")

	for _, name := range []string{"numerals", "Numerals", "session", "engines", "config", "mcp"} {
		content, err := Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, content)
	}

	_, err = Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	names, err := List()
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "engines", "mcp", "numerals", "session"}, names)
}
