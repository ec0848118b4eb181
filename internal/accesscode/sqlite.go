package accesscode

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const createCodesTable = `
CREATE TABLE IF NOT EXISTS free_codes (
	code TEXT PRIMARY KEY,
	used INTEGER NOT NULL DEFAULT 0
)`

// SQLiteStore is the transactional code-store backend. Redemption is a single
// conditional UPDATE, so the unused check and the used transition are atomic
// without any process-level locking.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the SQLite database at path and
// ensures the codes table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open code database: %w", err)
	}
	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY on concurrent redemption attempts.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createCodesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create codes table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Generate implements Store.
func (s *SQLiteStore) Generate(ctx context.Context) (string, error) {
	code, err := newCode()
	if err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO free_codes (code, used) VALUES (?, 0)`, code); err != nil {
		return "", fmt.Errorf("insert code: %w", err)
	}
	return code, nil
}

// Redeem implements Store.
func (s *SQLiteStore) Redeem(ctx context.Context, code string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE free_codes SET used = 1 WHERE code = ? AND used = 0`, code)
	if err != nil {
		return false, fmt.Errorf("redeem code: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("redeem code: %w", err)
	}
	return n == 1, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
