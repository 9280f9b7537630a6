package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jgoulah/refractocalc/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL UNIQUE,
		batch TEXT NOT NULL,
		unit TEXT NOT NULL,
		original_sg REAL NOT NULL,
		original_brix REAL NOT NULL,
		final_sg REAL NOT NULL,
		final_brix REAL NOT NULL,
		adjusted_sg REAL NOT NULL,
		adjusted_brix REAL NOT NULL,
		abv REAL NOT NULL,
		attenuation REAL NOT NULL,
		calories REAL NOT NULL,
		created_at TEXT NOT NULL,
		published INTEGER DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_readings_batch ON readings(batch);
	CREATE INDEX IF NOT EXISTS idx_readings_created_at ON readings(created_at);
	CREATE INDEX IF NOT EXISTS idx_readings_published ON readings(published);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// InsertReading inserts a corrected reading and returns it with its
// generated identifiers filled in
func (db *DB) InsertReading(r *models.Reading) error {
	query := `
	INSERT INTO readings (uuid, batch, unit, original_sg, original_brix, final_sg, final_brix,
		adjusted_sg, adjusted_brix, abv, attenuation, calories, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if r.UUID == "" {
		r.UUID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	createdAt := r.CreatedAt.UTC().Format(time.RFC3339)

	res, err := db.conn.Exec(query, r.UUID, r.Batch, r.Unit,
		r.OriginalSG, r.OriginalBrix, r.FinalSG, r.FinalBrix,
		r.AdjustedFinalSG, r.AdjustedFinalBrix, r.ABV, r.Attenuation, r.Calories, createdAt)
	if err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading insert id: %w", err)
	}
	r.ID = int(id)

	return nil
}

// ListReadings retrieves readings ordered by creation time, newest first.
// An empty batch lists all batches.
func (db *DB) ListReadings(batch string) ([]models.Reading, error) {
	query := `
	SELECT id, uuid, batch, unit, original_sg, original_brix, final_sg, final_brix,
		adjusted_sg, adjusted_brix, abv, attenuation, calories, created_at
	FROM readings
	`
	args := []any{}
	if batch != "" {
		query += ` WHERE batch = ?`
		args = append(args, batch)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// ListUnpublishedReadings retrieves readings not yet published, oldest
// first so downstream history stays in order. An empty batch lists all
// batches.
func (db *DB) ListUnpublishedReadings(batch string) ([]models.Reading, error) {
	query := `
	SELECT id, uuid, batch, unit, original_sg, original_brix, final_sg, final_brix,
		adjusted_sg, adjusted_brix, abv, attenuation, calories, created_at
	FROM readings
	WHERE published = 0
	`
	args := []any{}
	if batch != "" {
		query += ` AND batch = ?`
		args = append(args, batch)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying unpublished readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// MarkPublished marks a reading as published
func (db *DB) MarkPublished(id int) error {
	query := `UPDATE readings SET published = 1 WHERE id = ?`
	_, err := db.conn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("marking reading as published: %w", err)
	}
	return nil
}

// Batches returns the distinct batch names with logged readings
func (db *DB) Batches() ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT batch FROM readings ORDER BY batch`)
	if err != nil {
		return nil, fmt.Errorf("querying batches: %w", err)
	}
	defer rows.Close()

	var batches []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("scanning batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func scanReadings(rows *sql.Rows) ([]models.Reading, error) {
	var results []models.Reading
	for rows.Next() {
		var r models.Reading
		var createdAt string

		if err := rows.Scan(&r.ID, &r.UUID, &r.Batch, &r.Unit,
			&r.OriginalSG, &r.OriginalBrix, &r.FinalSG, &r.FinalBrix,
			&r.AdjustedFinalSG, &r.AdjustedFinalBrix, &r.ABV, &r.Attenuation, &r.Calories,
			&createdAt); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		var err error
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		results = append(results, r)
	}

	return results, rows.Err()
}
