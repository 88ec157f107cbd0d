package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Hourly summaries as handed over by the capture layer. The nested
	// sample/session/segment lists are stored as JSON payloads; this core
	// never queries inside them.
	`CREATE TABLE IF NOT EXISTS hourly_summaries (
		id            TEXT PRIMARY KEY,
		start_time    TEXT NOT NULL,
		end_time      TEXT NOT NULL,
		confidence    REAL NOT NULL DEFAULT 0,
		has_feedback  INTEGER NOT NULL DEFAULT 0,
		is_locked     INTEGER NOT NULL DEFAULT 0,
		samples_json  TEXT NOT NULL DEFAULT '[]',
		sessions_json TEXT NOT NULL DEFAULT '[]',
		segments_json TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_summaries_start ON hourly_summaries(start_time)`,

	`CREATE TABLE IF NOT EXISTS saved_places (
		id         TEXT PRIMARY KEY,
		label      TEXT NOT NULL,
		category   TEXT NOT NULL,
		lat        REAL NOT NULL,
		lon        REAL NOT NULL,
		radius_m   REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS inferred_places (
		id         TEXT PRIMARY KEY,
		kind       TEXT NOT NULL CHECK(kind IN ('home','work','frequent')),
		label      TEXT NOT NULL,
		category   TEXT NOT NULL,
		lat        REAL NOT NULL,
		lon        REAL NOT NULL,
		confidence REAL NOT NULL DEFAULT 0
	)`,

	// Named places around the user's area, used as disambiguation
	// candidates for unresolved samples.
	`CREATE TABLE IF NOT EXISTS nearby_places (
		external_id TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		vicinity    TEXT NOT NULL DEFAULT '',
		types       TEXT NOT NULL DEFAULT '',
		lat         REAL NOT NULL,
		lon         REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS emails (
		id          TEXT PRIMARY KEY,
		subject     TEXT NOT NULL,
		counterpart TEXT NOT NULL DEFAULT '',
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chats (
		id         TEXT PRIMARY KEY,
		channel    TEXT NOT NULL CHECK(channel IN ('slack','sms')),
		title      TEXT NOT NULL,
		snippet    TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		attendees  TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS calls (
		id         TEXT PRIMARY KEY,
		contact    TEXT NOT NULL DEFAULT '',
		incoming   INTEGER NOT NULL DEFAULT 0,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS calendar_entries (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		source     TEXT NOT NULL CHECK(source IN ('planned','actual')),
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL
	)`,

	// One synthesized day per row, kept as the rolling baseline for
	// pattern analysis.
	`CREATE TABLE IF NOT EXISTS day_archive (
		day         TEXT PRIMARY KEY,
		blocks_json TEXT NOT NULL,
		events_json TEXT NOT NULL,
		built_at    TEXT NOT NULL
	)`,
}
