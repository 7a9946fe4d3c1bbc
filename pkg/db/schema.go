package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per process invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source_dir TEXT NOT NULL,
    orbit_date TEXT,
    output_file TEXT,
    report_count INTEGER NOT NULL DEFAULT 0,
    body_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- Bodies: parsed output per run, units are SI
CREATE TABLE IF NOT EXISTS bodies (
    body_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    object_id TEXT NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,           -- STAR, PLANET, DWARF_PLANET, MOON, ASTEROID, SPACECRAFT
    mass REAL NOT NULL,           -- kg, -1 when unknown
    density REAL NOT NULL,        -- kg/m^3, -1 when unknown
    x REAL, y REAL, z REAL,       -- m
    vx REAL, vy REAL, vz REAL,    -- m/s
    content_hash TEXT,            -- sha256 of the raw report
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, object_id)
);

CREATE INDEX IF NOT EXISTS idx_bodies_run ON bodies(run_id);
CREATE INDEX IF NOT EXISTS idx_bodies_type ON bodies(type);

-- Run failures: reports that produced no body
CREATE TABLE IF NOT EXISTS run_failures (
    failure_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    object_id TEXT NOT NULL,
    error_type TEXT NOT NULL,     -- no_data, parse_error
    error_message TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, object_id)
);

CREATE INDEX IF NOT EXISTS idx_run_failures_run ON run_failures(run_id);
`
