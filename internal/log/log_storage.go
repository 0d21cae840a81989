// log_storage.go implements SQLite-based persistent audit logging.
//
// Separated from log.go to isolate database concerns. The main log.go provides
// the fluent API for building log entries, while this file handles persistence.
// The project field uses a hash of the working directory to enable aggregation
// while preserving privacy.
//
// Design: Errors during logging are reported to stderr and otherwise ignored.
// A conversion succeeds even if it cannot be recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/roman/internal/config"
	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, action, engine, input, output,
		                 success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, e.Source, e.Action,
		nilIfEmpty(e.Engine), nilIfEmpty(e.Input), nilIfEmpty(e.Output),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "roman: audit log write failed: %v\n", err)
	}
}

// recent returns up to limit entries started at or after since (unix
// seconds, 0 for all), newest first.
func (l *Logger) recent(limit int, since int64) ([]Entry, error) {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	rows, err := l.db.Query(`
		SELECT id, start, end, source, action, engine, input, output, success, error, detail
		FROM log WHERE start >= ? ORDER BY id DESC LIMIT ?`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                                     Entry
			engine, input, output, errMsg, detail sql.NullString
			success                               int
		)
		if err := rows.Scan(&e.ID, &e.Start, &e.End, &e.Source, &e.Action,
			&engine, &input, &output, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		e.Engine = engine.String
		e.Input = input.String
		e.Output = output.String
		e.Error = errMsg.String
		e.Success = success == 1
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home := config.HomeDir()
	if home == "" {
		// Fall back to current directory if home cannot be determined.
		return filepath.Join(".roman", "log", "roman-log.db")
	}
	return filepath.Join(home, "log", "roman-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path, enabling
// cross-project log queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			engine  TEXT,
			input   TEXT,
			output  TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
