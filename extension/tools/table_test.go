package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/table"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTable(t *testing.T, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := tableHandler(context.Background(), extension.NewContext(&config.Config{}, roman.EngineState), req)
	require.NoError(t, err)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestTableHandler(t *testing.T) {
	out, isErr := callTable(t, map[string]any{"from": 1998.0, "to": 2000.0})
	require.False(t, isErr, out)
	var pairs []table.Pair
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))
	assert.Equal(t, []table.Pair{{Numeral: "MCMXCVIII", Value: 1998}, {Numeral: "MCMXCIX", Value: 1999}, {Numeral: "MM", Value: 2000}}, pairs)

	out, isErr = callTable(t, map[string]any{})
	require.False(t, isErr, out)
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))
	assert.Len(t, pairs, 100)

	out, isErr = callTable(t, map[string]any{"from": 3990.0})
	require.False(t, isErr, out)
	require.NoError(t, json.Unmarshal([]byte(out), &pairs))
	assert.Len(t, pairs, 10)

	_, isErr = callTable(t, map[string]any{"from": 1.0, "to": 3999.0})
	assert.True(t, isErr)

	out, isErr = callTable(t, map[string]any{"from": 0.0, "to": 3.0})
	assert.True(t, isErr)
	assert.Contains(t, out, "out of range")
}
