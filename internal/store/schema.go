package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL,
    ingested_at          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
    file_path            TEXT NOT NULL REFERENCES file_tracker(file_path) ON DELETE CASCADE,
    seq                  INTEGER NOT NULL,
    project              TEXT NOT NULL,
    user                 TEXT NOT NULL DEFAULT '',
    duration_hours       REAL NOT NULL,
    start_date           TEXT,
    period_key           TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (file_path, seq)
);

CREATE INDEX IF NOT EXISTS idx_entries_project ON entries(project);
CREATE INDEX IF NOT EXISTS idx_entries_period ON entries(period_key);
`
