// mcp.go implements the conversion MCP tools.
//
// Conversion failures are tool results with IsError set, not Go errors, so
// the client sees the message ("IIII is not a valid Roman numeral").

package convert

import (
	"context"
	"errors"
	"strconv"

	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/mark3labs/mcp-go/mcp"
)

func tools() []extension.MCPTool {
	engineOpt := mcp.WithString("engine",
		mcp.Description("Validator engine (default: configured engine)"),
		mcp.Enum(roman.Engines()...),
	)
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("roman_to_int",
				mcp.WithDescription("Convert a Roman numeral (case-insensitive) to an integer"),
				mcp.WithString("numeral", mcp.Required(), mcp.Description("Roman numeral, e.g. MCMXCVIII")),
				engineOpt,
			),
			Handler: toInt,
		},
		{
			Tool: mcp.NewTool("roman_from_int",
				mcp.WithDescription("Convert an integer in 1-3999 to its canonical Roman numeral"),
				mcp.WithNumber("number", mcp.Required(), mcp.Description("Integer from 1 to 3999")),
			),
			Handler: fromInt,
		},
		{
			Tool: mcp.NewTool("roman_validate",
				mcp.WithDescription("Check whether a string is a well-formed standard-form Roman numeral"),
				mcp.WithString("numeral", mcp.Required(), mcp.Description("Candidate numeral")),
				engineOpt,
			),
			Handler: validate,
		},
	}
}

// engineFor resolves the engine argument, falling back to the context.
func engineFor(extCtx extension.Context, req mcp.CallToolRequest) (roman.Engine, error) {
	name := extension.ArgString(req, "engine", "")
	if name == "" {
		return extCtx.Engine(), nil
	}
	return roman.ParseEngine(name)
}

func toInt(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("numeral")
	if err != nil {
		return mcp.NewToolResultError("numeral is required"), nil //nolint:nilerr
	}
	engine, err := engineFor(extCtx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := roman.ToInt(raw, engine)
	b := log.Event("mcp:roman_to_int", "decode").Engine(engine.String()).Input(raw)
	if err == nil {
		b.Output(strconv.Itoa(n))
	}
	b.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	numeral, _ := roman.NormaliseNumeral(raw)
	return extension.JSONResult(Result{Numeral: numeral, Value: n, Engine: engine.String()})
}

func fromInt(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, ok := extension.ArgInt(req, "number", 0)
	if !ok {
		return mcp.NewToolResultError("number is required and must be an integer"), nil
	}

	numeral, err := roman.FromInt(n)
	log.Event("mcp:roman_from_int", "encode").Input(strconv.Itoa(n)).Output(numeral).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return extension.JSONResult(Result{Numeral: numeral, Value: n})
}

func validate(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("numeral")
	if err != nil {
		return mcp.NewToolResultError("numeral is required"), nil //nolint:nilerr
	}
	engine, err := engineFor(extCtx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	numeral, err := roman.Check(raw, engine)
	log.Event("mcp:roman_validate", "validate").Engine(engine.String()).Input(raw).Write(err)

	v := Verdict{Numeral: numeral, Valid: err == nil, Engine: engine.String()}
	if err != nil {
		v.Error = err.Error()
		if !errors.Is(err, roman.ErrInvalidNumeral) {
			v.Numeral = raw
		}
	}
	return extension.JSONResult(v)
}
