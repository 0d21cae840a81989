package log

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database under t.TempDir.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/test/project")

		Log(Entry{
			Source:  "convert:to-int",
			Action:  "decode",
			Engine:  "state",
			Input:   "MCMXCVIII",
			Output:  "1998",
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, engine, input, output, project string
		var success int
		err = db.QueryRow("SELECT source, action, engine, input, output, success, project FROM log WHERE id = 1").
			Scan(&source, &action, &engine, &input, &output, &success, &project)
		require.NoError(t, err)
		assert.Equal(t, "convert:to-int", source)
		assert.Equal(t, "decode", action)
		assert.Equal(t, "state", engine)
		assert.Equal(t, "MCMXCVIII", input)
		assert.Equal(t, "1998", output)
		assert.Equal(t, 1, success)
		assert.Equal(t, hash("/test/project"), project)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		Log(Entry{Source: "test:cmd", Action: "test", Success: true})

		entries, err := Recent(10)
		require.NoError(t, err)
		assert.Nil(t, entries)
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	Event("convert:to-roman", "encode").
		Input("1998").
		Output("MCMXCVIII").
		Write(nil)

	Event("convert:to-int", "decode").
		Engine("pattern").
		Input("IIII").
		Detail("reason", "grammar").
		Write(errors.New("IIII is not a valid Roman numeral"))

	entries, err := Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	failed := entries[0]
	assert.Equal(t, "convert:to-int", failed.Source)
	assert.Equal(t, "pattern", failed.Engine)
	assert.False(t, failed.Success)
	assert.Equal(t, "IIII is not a valid Roman numeral", failed.Error)
	assert.Empty(t, failed.Output)
	assert.Equal(t, "grammar", failed.Detail["reason"])

	ok := entries[1]
	assert.Equal(t, "encode", ok.Action)
	assert.True(t, ok.Success)
	assert.Equal(t, "MCMXCVIII", ok.Output)
	assert.Empty(t, ok.Engine)
	assert.LessOrEqual(t, ok.Start, ok.End)
}

func TestRecent_Limit(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	for range 5 {
		Event("convert:to-roman", "encode").Input("1").Output("I").Write(nil)
	}

	entries, err := Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Greater(t, entries[0].ID, entries[2].ID)
}

func TestRecentSince(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	old := time.Now().Add(-48 * time.Hour).Unix()
	Log(Entry{Start: old, End: old, Source: "convert:to-int", Action: "decode", Input: "X", Output: "10", Success: true})
	Event("convert:to-int", "decode").Input("V").Output("5").Write(nil)

	entries, err := RecentSince(10, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "V", entries[0].Input)

	entries, err = RecentSince(10, time.Time{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project")
	h2 := hash("/home/user/project")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ROMAN_HOME", home)

	orig := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = orig }()

	assert.Equal(t, filepath.Join(home, "log", "roman-log.db"), DBPath())
}
