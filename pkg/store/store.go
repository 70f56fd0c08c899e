// Package store persists extracted gazette records in a local SQLite
// database, so repeated batch runs accumulate into one queryable table.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/coolbeans/gaceta/pkg/extract"
)

const schema = `
CREATE TABLE IF NOT EXISTS documentos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	archivo TEXT NOT NULL,
	tipo_documento TEXT NOT NULL,
	numero TEXT,
	anio TEXT,
	titulo TEXT,
	proposito TEXT,
	descripcion TEXT,
	fecha_publicacion TEXT,
	institucion TEXT,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documentos_archivo ON documentos(archivo);
`

// Store is a SQLite-backed sink for extracted records.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and ensures the
// documentos table exists. WAL mode keeps overlapping batch runs safe.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveRecords inserts records in a single transaction, stamping each with
// the current UTC time.
func (s *Store) SaveRecords(records []extract.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO documentos (
		archivo, tipo_documento, numero, anio, titulo, proposito,
		descripcion, fecha_publicacion, institucion, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		if _, err := stmt.Exec(
			r.Archivo, string(r.TipoDocumento), r.Numero, r.Anio, r.Titulo,
			r.Proposito, r.Descripcion, r.FechaPublicacion, r.Institucion, now,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting record for %s: %w", r.Archivo, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Count returns the number of persisted records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM documentos`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
