package verify

import (
	"context"
	"testing"

	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, e := range []roman.Engine{roman.EngineState, roman.EnginePattern} {
		t.Run(e.String(), func(t *testing.T) {
			steps := 0
			r, err := Run(context.Background(), Options{Engine: e, Step: func() { steps++ }})
			require.NoError(t, err)
			assert.Empty(t, r.Failures)
			assert.True(t, r.OK())
			assert.Equal(t, Total, r.Total)
			assert.Equal(t, Total, steps)
			assert.Equal(t, e, r.Engine)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := Run(ctx, Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, r.Passed)
}

func TestDrive(t *testing.T) {
	out, status := drive(context.Background(), roman.EngineState, optionToRoman, session.IntegerPrompt, "1998")
	assert.Equal(t, session.StatusOK, status)
	assert.Equal(t, "MCMXCVIII", out)

	out, status = drive(context.Background(), roman.EngineState, optionToInt, session.NumeralPrompt, "mcmxcviii")
	assert.Equal(t, session.StatusOK, status)
	assert.Equal(t, "1998", out)
}

func TestReject_ReportsMismatch(t *testing.T) {
	f := reject(context.Background(), roman.EngineState, "numerals", optionToInt, session.NumeralPrompt,
		Case{Input: "IV", Want: session.StatusInvalidNumeral})
	require.NotNil(t, f)
	assert.Equal(t, "IV", f.Input)
	assert.Contains(t, f.Detail, "status 0, want 5")

	assert.Nil(t, reject(context.Background(), roman.EngineState, "numerals", optionToInt, session.NumeralPrompt,
		Case{Input: "IIV", Want: session.StatusInvalidNumeral}))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 3999+46+8, Total)
}
