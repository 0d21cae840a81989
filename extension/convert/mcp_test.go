package convert

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/config"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, h extension.MCPHandler, engine roman.Engine, args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), extension.NewContext(&config.Config{}, engine), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestTools(t *testing.T) {
	var names []string
	for _, tool := range tools() {
		names = append(names, tool.Tool.Name)
		assert.NotNil(t, tool.Handler)
	}
	assert.Equal(t, []string{"roman_to_int", "roman_from_int", "roman_validate"}, names)
}

func TestToInt(t *testing.T) {
	out, isErr := call(t, toInt, roman.EngineState, map[string]any{"numeral": "mcmxcviii"})
	require.False(t, isErr, out)
	var r Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, Result{Numeral: "MCMXCVIII", Value: 1998, Engine: "state"}, r)

	out, isErr = call(t, toInt, roman.EngineState, map[string]any{"numeral": "XIV", "engine": "pattern"})
	require.False(t, isErr, out)
	assert.Contains(t, out, `"engine": "pattern"`)

	out, isErr = call(t, toInt, roman.EnginePattern, map[string]any{"numeral": "IIII"})
	assert.True(t, isErr)
	assert.Equal(t, "IIII is not a valid Roman numeral", out)

	_, isErr = call(t, toInt, roman.EngineState, map[string]any{})
	assert.True(t, isErr)

	out, isErr = call(t, toInt, roman.EngineState, map[string]any{"numeral": "X", "engine": "fsm"})
	assert.True(t, isErr)
	assert.Contains(t, out, "unknown validator engine")
}

func TestFromInt(t *testing.T) {
	out, isErr := call(t, fromInt, roman.EngineState, map[string]any{"number": 3888.0})
	require.False(t, isErr, out)
	assert.Contains(t, out, `"numeral": "MMMDCCCLXXXVIII"`)

	out, isErr = call(t, fromInt, roman.EngineState, map[string]any{"number": 4000.0})
	assert.True(t, isErr)
	assert.Equal(t, "4000 out of range (1-3999)", out)

	_, isErr = call(t, fromInt, roman.EngineState, map[string]any{"number": "12"})
	assert.True(t, isErr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		numeral string
		want    Verdict
		errPart string
	}{
		{"mcmxciv", Verdict{Numeral: "MCMXCIV", Valid: true, Engine: "state"}, ""},
		{"IXC", Verdict{Numeral: "IXC", Engine: "state"}, "IXC is not a valid Roman numeral"},
		{"I V", Verdict{Numeral: "I V", Engine: "state"}, "malformed input"},
	}
	for _, tt := range tests {
		t.Run(tt.numeral, func(t *testing.T) {
			out, isErr := call(t, validate, roman.EngineState, map[string]any{"numeral": tt.numeral})
			require.False(t, isErr, out)
			var v Verdict
			require.NoError(t, json.Unmarshal([]byte(out), &v))
			if tt.errPart == "" {
				assert.Empty(t, v.Error)
			} else {
				assert.Contains(t, v.Error, tt.errPart)
			}
			v.Error = ""
			assert.Equal(t, tt.want, v)
		})
	}
}
