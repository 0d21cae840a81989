package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	env := newTestEnv(t)

	r := env.exec("", "table")
	require.Equal(t, 0, r.code, r.stderr)
	var pairs [][2]string
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &pairs))
	require.Len(t, pairs, 3999)
	assert.Equal(t, [2]string{"I", "1"}, pairs[0])
	assert.Equal(t, [2]string{"MCMXCVIII", "1998"}, pairs[1997])

	env.equals(env.run("table", "--from", "4", "--to", "5"), `[["IV","4"],["V","5"]]`)

	r = env.exec("", "table", "--to", "4000")
	assert.Equal(t, 5, r.code)
}

func TestVerify(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("verify")
	env.contains(out, "state: 4053/4053 checks passed")
	env.contains(out, "pattern: 4053/4053 checks passed")
}

func TestVerify_JSON(t *testing.T) {
	env := newTestEnv(t)

	r := env.exec("", "verify", "-o", "json")
	require.Equal(t, 0, r.code, r.stderr)
	var reports []struct {
		Engine string `json:"engine"`
		Passed int    `json:"passed"`
		Total  int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &reports))
	require.Len(t, reports, 2)
	for _, rep := range reports {
		assert.Equal(t, rep.Total, rep.Passed, rep.Engine)
	}
}

func TestVerify_Table(t *testing.T) {
	env := newTestEnv(t)

	good := filepath.Join(env.dir, "romans.json")
	require.NoError(t, os.WriteFile(good, []byte(env.run("table")), 0o644))
	env.contains(env.run("verify", "--table", good), "3999 rows match the encoder")

	bad := filepath.Join(env.dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[["I","1"],["IIII","4"],["III","3"]]`), 0o644))
	r := env.exec("", "verify", "--table", bad, "--no-color")
	assert.Equal(t, 1, r.code)
	env.contains(r.stdout, "--- encoder")
	env.contains(r.stdout, "+++ "+bad)
	env.contains(r.stdout, "- 4 IV")
	env.contains(r.stdout, "+ 4 IIII")
	env.contains(r.stdout, "1 removed, 1 added")

	r = env.exec("", "verify", "--table", filepath.Join(env.dir, "missing.json"))
	assert.Equal(t, 1, r.code)
}

func TestBench(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("bench", "--iterations", "1")
	env.contains(out, "State validator:")
	env.contains(out, "Pattern validator:")
	env.contains(out, "1 iterations")

	r := env.exec("", "bench", "--iterations", "0")
	assert.Equal(t, 1, r.code)
	env.contains(r.stderr, "iterations must be at least 1")
}
