// Testing Strategy:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: flag parsing -> extension -> session/roman -> audit log. The
// binary is built once and every test runs it in a fresh directory with
// ROMAN_HOME pointed at a temporary home, so config and the log database
// never touch the real ~/.roman.

package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the roman binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "roman-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "roman"
		if os.PathSeparator == '\\' {
			binaryName = "roman.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	extra  []string // additional environment, KEY=value
}

// newTestEnv creates a working directory and an isolated roman home.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   t.TempDir(),
		binary: buildBinary(t),
	}
}

// setenv adds an environment variable for subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.extra = append(e.extra, key+"="+value)
}

func (e *testEnv) environ() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "ROMAN_") {
			continue
		}
		env = append(env, kv)
	}
	env = append(env, "ROMAN_HOME="+e.home, "HOME="+e.home)
	return append(env, e.extra...)
}

func (e *testEnv) command(stdin string, args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.environ()
	cmd.Stdin = strings.NewReader(stdin)
	return cmd
}

// run executes roman with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("roman %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes roman and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command("", args...).CombinedOutput()
	return string(out), err
}

// runStdin executes roman with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.runStdinErr(input, args...)
	if err != nil {
		e.t.Fatalf("roman %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runStdinErr executes roman with stdin input and returns any error.
func (e *testEnv) runStdinErr(input string, args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(input, args...).CombinedOutput()
	return string(out), err
}

// result holds the separated streams and exit code of a run.
type result struct {
	stdout string
	stderr string
	code   int
}

// exec runs roman and separates stdout, stderr and the exit code.
func (e *testEnv) exec(stdin string, args ...string) result {
	e.t.Helper()
	cmd := e.command(stdin, args...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r := result{}
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			e.t.Fatalf("roman %v: %v", args, err)
		}
		r.code = ee.ExitCode()
	}
	r.stdout, r.stderr = stdout.String(), stderr.String()
	return r
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
