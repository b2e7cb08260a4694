// Package store provides a SQLite-backed memoization of ingestion: the
// normalized entries of each export file, keyed by file identity. It caches
// ingestion only; reconciliation is always recomputed from current inputs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hburn/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed per-file entry caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a file.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns a map of file_path -> FileInfo for all tracked files.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveEntries replaces the cached entries for one source file and records
// its tracking info. Sequence numbers preserve normalization order.
func (c *Cache) SaveEntries(path string, mtimeNs, sizeBytes int64, entries []model.TimeEntry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, mtime_ns, size_bytes, ingested_at)
		VALUES (?, ?, ?, ?)`, path, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM entries WHERE file_path = ?", path); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO entries
		(file_path, seq, project, user, duration_hours, start_date, period_key)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range entries {
		startDate := ""
		if !e.StartDate.IsZero() {
			startDate = e.StartDate.Format("2006-01-02")
		}
		if _, err := stmt.Exec(path, i, e.Project, e.User, e.DurationHours, startDate, e.PeriodKey); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadEntries reads the cached entries for one source file in their
// original normalization order.
func (c *Cache) LoadEntries(path string) ([]model.TimeEntry, error) {
	rows, err := c.db.Query(`SELECT project, user, duration_hours, start_date, period_key
		FROM entries WHERE file_path = ? ORDER BY seq`, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.TimeEntry
	for rows.Next() {
		var e model.TimeEntry
		var startDate sql.NullString
		if err := rows.Scan(&e.Project, &e.User, &e.DurationHours, &startDate, &e.PeriodKey); err != nil {
			return nil, err
		}
		if startDate.Valid && startDate.String != "" {
			e.StartDate, _ = time.Parse("2006-01-02", startDate.String)
		}
		e.SourceFile = path
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteFile removes a file's tracking entry and, via cascade, its entries.
func (c *Cache) DeleteFile(path string) error {
	_, err := c.db.Exec("DELETE FROM file_tracker WHERE file_path = ?", path)
	return err
}

// EntryCount returns the number of cached entries across all files.
func (c *Cache) EntryCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}
