package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

// dbPath is fixed; the store lives next to wherever the app is launched.
const dbPath = "fitness_tracker.db"

const timestampFormat = "2006-01-02 15:04:05"
const dateFormat = "2006-01-02"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS workouts (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	exercise_type  TEXT NOT NULL,
	count          INTEGER NOT NULL,
	timestamp      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date(timestamp));
`

// openDB opens (or creates) the SQLite database and ensures the schema
// exists. The schema is additive-only; there is no version migration.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// ---------------------------------------------------------------------------
// SQLite-backed workoutStore
// ---------------------------------------------------------------------------

type dbStore struct {
	db *sql.DB
}

func newDBStore(db *sql.DB) *dbStore {
	return &dbStore{db: db}
}

// Record appends one event stamped with the local wall clock. The caller has
// already validated count > 0.
func (s *dbStore) Record(kind exerciseKind, count int) error {
	ts := time.Now().Format(timestampFormat)
	_, err := s.db.Exec(`
		INSERT INTO workouts (exercise_type, count, timestamp)
		VALUES (?, ?, ?)
	`, kind.slug(), count, ts)
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

// EventsOnDate returns the events of one local calendar day in chronological
// order.
func (s *dbStore) EventsOnDate(date string) ([]workout, error) {
	rows, err := s.db.Query(`
		SELECT id, exercise_type, count, timestamp
		FROM workouts
		WHERE date(timestamp) = date(?)
		ORDER BY timestamp ASC, id ASC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	var out []workout
	for rows.Next() {
		var w workout
		if err := rows.Scan(&w.id, &w.exercise, &w.count, &w.timestamp); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *dbStore) EventsToday() ([]workout, error) {
	return s.EventsOnDate(today())
}

// DistinctDates returns every local calendar day with at least one event,
// most recent first.
func (s *dbStore) DistinctDates() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT date(timestamp) AS workout_date
		FROM workouts
		ORDER BY workout_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query dates: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *dbStore) MostRecentDateBefore(date string) (string, error) {
	var d sql.NullString
	err := s.db.QueryRow(`
		SELECT MAX(date(timestamp))
		FROM workouts
		WHERE date(timestamp) < date(?)
	`, date).Scan(&d)
	if err != nil {
		return "", fmt.Errorf("query previous date: %w", err)
	}
	if !d.Valid {
		return "", nil
	}
	return d.String, nil
}

// today returns the current local calendar day.
func today() string {
	return time.Now().Format(dateFormat)
}
