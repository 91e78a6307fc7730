package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vpath-go/internal/database/migrations"
	"vpath-go/internal/model"
	"vpath-go/internal/mount"
	"vpath-go/internal/vpath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the mount.Store interface using SQLite.
//
// Mounts are keyed by the normalized virtual path; both origins are kept so
// a listing shows what the user typed.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens the database at path and applies pending migrations.
// path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// NewSQLiteStoreFromDB wraps an existing connection without migrating it.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteStoreFromDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenConnection opens and configures a SQLite database connection.
// The pool is limited to one connection so that ":memory:" databases are
// shared by every query instead of being created per connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Mount operations

func (s *SQLiteStore) FindMount(virtual vpath.Path) (*model.Mount, error) {
	row := s.db.QueryRowContext(context.Background(),
		`SELECT id, virtual_origin, target_origin, created_at FROM mounts WHERE virtual_path = ?`,
		virtual.Normalized())

	m, err := scanMount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding mount: %w", err)
	}
	return m, nil
}

func (s *SQLiteStore) ListMounts() ([]*model.Mount, error) {
	rows, err := s.db.QueryContext(context.Background(),
		`SELECT id, virtual_origin, target_origin, created_at FROM mounts ORDER BY virtual_path`)
	if err != nil {
		return nil, fmt.Errorf("listing mounts: %w", err)
	}
	defer rows.Close()

	var mounts []*model.Mount
	for rows.Next() {
		m, err := scanMount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning mount: %w", err)
		}
		mounts = append(mounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mounts: %w", err)
	}
	return mounts, nil
}

func (s *SQLiteStore) CreateMount(m *model.Mount) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO mounts (id, virtual_path, virtual_origin, target_origin, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Virtual.Normalized(), m.Virtual.Origin(), m.Target.Origin(), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting mount: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteMount(id string) error {
	res, err := s.db.ExecContext(context.Background(), `DELETE FROM mounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting mount: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting mount: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mount not found: %s", id)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMount(row rowScanner) (*model.Mount, error) {
	var (
		m               model.Mount
		virtual, target string
	)
	if err := row.Scan(&m.ID, &virtual, &target, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.Virtual = vpath.New(virtual)
	m.Target = vpath.New(target)
	return &m, nil
}

// Operation tracking

func (s *SQLiteStore) CreateOperation(operation, parameters string) (*model.Operation, error) {
	op := &model.Operation{
		Operation:  operation,
		Parameters: parameters,
		Status:     "running",
		StartedAt:  time.Now(),
	}

	res, err := s.db.ExecContext(context.Background(),
		`INSERT INTO operations (operation, parameters, status, started_at) VALUES (?, ?, ?, ?)`,
		op.Operation, op.Parameters, op.Status, op.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("creating operation: %w", err)
	}

	op.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading operation ID: %w", err)
	}
	return op, nil
}

func (s *SQLiteStore) FinishOperation(id int64, status string) error {
	_, err := s.db.ExecContext(context.Background(),
		`UPDATE operations SET finished_at = ?, status = ? WHERE id = ?`,
		time.Now(), status, id)
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListOperations(limit int) ([]*model.Operation, error) {
	rows, err := s.db.QueryContext(context.Background(),
		`SELECT id, operation, parameters, status, started_at, finished_at FROM operations ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}
	defer rows.Close()

	var ops []*model.Operation
	for rows.Next() {
		var op model.Operation
		if err := rows.Scan(&op.ID, &op.Operation, &op.Parameters, &op.Status, &op.StartedAt, &op.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning operation: %w", err)
		}
		ops = append(ops, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operations: %w", err)
	}
	return ops, nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteStore) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteStore) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time check that SQLiteStore implements mount.Store interface
var _ mount.Store = (*SQLiteStore)(nil)
