// Package log provides centralised audit logging for roman conversions.
// Logs are stored in ~/.roman/log/roman-log.db (or under ROMAN_HOME) and
// record every CLI conversion and MCP tool invocation across directories.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("convert:to-int", "decode").
//		Engine(engine).
//		Input(raw).
//		Output(strconv.Itoa(n)).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "convert:to-roman",
// "session:to-int", "mcp:roman_validate".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	ID     int64  `json:"id"`               // row id, populated by Recent
	Source string `json:"source"`           // e.g., "convert:to-int", "mcp:roman_from_int"
	Action string `json:"action"`           // verb: decode, encode, validate
	Engine string `json:"engine,omitempty"` // validator engine, empty for encode
	Input  string `json:"input,omitempty"`  // raw input as given
	Output string `json:"output,omitempty"` // numeral, integer or verdict produced

	// Timing
	Start int64 `json:"start"` // unix timestamp when Event() called
	End   int64 `json:"end"`   // unix timestamp when Write() called

	Success bool           `json:"success"`          // whether operation succeeded
	Error   string         `json:"error,omitempty"`  // error message if failed
	Detail  map[string]any `json:"detail,omitempty"` // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The action describes what was done: "decode", "encode" or "validate".
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Engine sets the validator engine used by the operation.
func (b *Builder) Engine(engine string) *Builder {
	b.entry.Engine = engine
	return b
}

// Input sets the raw input of the operation.
func (b *Builder) Input(input string) *Builder {
	b.entry.Input = input
	return b
}

// Output sets the result of the operation. Set it only after success.
func (b *Builder) Output(output string) *Builder {
	b.entry.Output = output
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
//	n, err := roman.ToInt(raw, engine)
//	log.Event("convert:to-int", "decode").Input(raw).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir is usually the working directory of the process.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns up to limit entries, newest first. Returns nil without
// error if the logger is not open.
func Recent(limit int) ([]Entry, error) {
	return RecentSince(limit, time.Time{})
}

// RecentSince is Recent restricted to entries started at or after since.
// A zero since means no lower bound.
func RecentSince(limit int, since time.Time) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	var from int64
	if !since.IsZero() {
		from = since.Unix()
	}
	return l.recent(limit, from)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
