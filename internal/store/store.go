// Package store provides a SQLite-backed history of submitted command lines.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	line     TEXT NOT NULL,
	created  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_line ON history(line);
`

// Entry is one submitted line.
type Entry struct {
	ID      int64
	Line    string
	Created time.Time
}

// History is the persisted list of submitted lines, newest last.
type History struct {
	mu         sync.Mutex
	db         *sql.DB
	maxEntries int
}

// Open creates or opens a history database at the given path. Once more than
// maxEntries lines are stored the oldest are dropped (0 = keep everything).
func Open(dbPath string, maxEntries int) (*History, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	h := &History{db: db, maxEntries: maxEntries}
	h.trim()
	return h, nil
}

// Close closes the database.
func (h *History) Close() error {
	if h == nil {
		return nil
	}
	return h.db.Close()
}

// Add appends a line. Blank lines and an immediate repeat of the newest
// entry are skipped. No-op on nil receiver.
func (h *History) Add(line string) {
	if h == nil || strings.TrimSpace(line) == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	var last string
	err := h.db.QueryRow("SELECT line FROM history ORDER BY id DESC LIMIT 1").Scan(&last)
	if err == nil && last == line {
		return
	}

	if _, err := h.db.Exec(
		"INSERT INTO history (line, created) VALUES (?, ?)",
		line, time.Now().Unix(),
	); err != nil {
		log.Warn().Err(err).Str("line", line).Msg("failed to record history")
		return
	}
	h.trimLocked()
}

// Recent returns up to limit entries, oldest first. Safe to call on a nil
// receiver (returns nothing).
func (h *History) Recent(limit int) []Entry {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := h.query(
		"SELECT id, line, created FROM history ORDER BY id DESC LIMIT ?",
		limitArg(limit),
	)
	reverse(entries)
	return entries
}

// Search returns up to limit distinct lines containing query
// (case-insensitive), newest first.
func (h *History) Search(query string, limit int) []Entry {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.query(
		`SELECT MAX(id), line, MAX(created) FROM history
		 WHERE instr(lower(line), ?) > 0
		 GROUP BY line ORDER BY MAX(id) DESC LIMIT ?`,
		strings.ToLower(query), limitArg(limit),
	)
}

func (h *History) query(q string, args ...any) []Entry {
	rows, err := h.db.Query(q, args...)
	if err != nil {
		log.Warn().Err(err).Msg("history query failed")
		return nil
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Line, &created); err != nil {
			continue
		}
		e.Created = time.Unix(created, 0)
		out = append(out, e)
	}
	return out
}

// trim drops the oldest entries beyond maxEntries.
func (h *History) trim() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.trimLocked()
}

func (h *History) trimLocked() {
	if h.maxEntries <= 0 {
		return
	}
	res, err := h.db.Exec(
		"DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)",
		h.maxEntries,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to trim history")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Debug().Int64("deleted", n).Msg("trimmed history")
	}
}

// limitArg maps "no limit" onto SQLite's LIMIT -1.
func limitArg(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func reverse(entries []Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
